package sections

import "regexp"

type matchers interface {
	banner(title string) *regexp.Regexp
	trailing(title string) *regexp.Regexp
}

// compileOnDemand serves the package-level helpers that run once per call.
type compileOnDemand struct{}

func (compileOnDemand) banner(title string) *regexp.Regexp { return Matcher(title) }
func (compileOnDemand) trailing(title string) *regexp.Regexp { return trailingMatcher(title) }

// compiled holds the patterns of every title a Settings value mentions. It
// is filled once and only read afterwards, so a Normalizer can be shared
// between goroutines.
type compiled struct {
	banners   map[string]*regexp.Regexp
	trailings map[string]*regexp.Regexp
}

func compile(s *Settings) compiled {
	c := compiled{
		banners:   make(map[string]*regexp.Regexp),
		trailings: make(map[string]*regexp.Regexp),
	}
	add := func(title string) {
		if _, ok := c.banners[title]; ok {
			return
		}
		c.banners[title] = Matcher(title)
		c.trailings[title] = trailingMatcher(title)
	}
	for _, kind := range []Kind{KindHeader, KindSource} {
		for _, title := range s.Schema(kind) {
			add(title)
		}
		for _, rule := range s.Renames(kind) {
			add(rule.From)
			add(rule.To)
		}
	}
	return c
}

func (c compiled) banner(title string) *regexp.Regexp {
	if re, ok := c.banners[title]; ok {
		return re
	}
	return Matcher(title)
}

func (c compiled) trailing(title string) *regexp.Regexp {
	if re, ok := c.trailings[title]; ok {
		return re
	}
	return trailingMatcher(title)
}
