package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// section banners
	SecInfo        Code = 1000
	SecMissing     Code = 1001
	SecLegacyTitle Code = 1002
	SecDuplicate   Code = 1003

	// include guards
	GrdInfo           Code = 2000
	GrdMissing        Code = 2001
	GrdPartial        Code = 2002
	GrdMultiplePragma Code = 2003
	GrdMultipleIfndef Code = 2004
	GrdMultipleDefine Code = 2005
	GrdMultipleEndif  Code = 2006
	GrdPragmaAndGuard Code = 2007
	GrdCollision      Code = 2008

	// extern "C" linkage
	ExtInfo    Code = 3000
	ExtMissing Code = 3001

	// file and folder names
	NamInfo      Code = 4000
	NamBadFile   Code = 4001
	NamBadFolder Code = 4002

	// IO
	IOInfo           Code = 5000
	IOLoadFileError  Code = 5001
	IOWriteFileError Code = 5002

	// license notices
	LegInfo     Code = 6000
	LegMissing  Code = 6001
	LegOutdated Code = 6002
	LegHistory  Code = 6003
)

var codeDescription = map[Code]string{
	UnknownCode:       "Unknown error",
	SecInfo:           "Section information",
	SecMissing:        "Missing section banner",
	SecLegacyTitle:    "Section banner uses a legacy title",
	SecDuplicate:      "Duplicate section banner",
	GrdInfo:           "Include guard information",
	GrdMissing:        "Missing include guard",
	GrdPartial:        "Incomplete include guard",
	GrdMultiplePragma: "Multiple #pragma once",
	GrdMultipleIfndef: "Multiple #ifndef guard lines",
	GrdMultipleDefine: "Multiple #define guard lines",
	GrdMultipleEndif:  "Multiple #endif guard lines",
	GrdPragmaAndGuard: "Both #pragma once and include guard",
	GrdCollision:      "Include guard shared by several files",
	ExtInfo:           "Linkage information",
	ExtMissing:        "Missing extern \"C\" linkage-specification",
	NamInfo:           "Naming information",
	NamBadFile:        "Illegal file name",
	NamBadFolder:      "Illegal folder name",
	IOInfo:            "I/O information",
	IOLoadFileError:   "I/O load file error",
	IOWriteFileError:  "I/O write file error",
	LegInfo:           "License information",
	LegMissing:        "Missing license notice",
	LegOutdated:       "Outdated license notice",
	LegHistory:        "Cannot read file history",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SEC%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("GRD%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EXT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("NAM%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("LEG%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
