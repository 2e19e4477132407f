package indexer

import (
	"fmt"
	"regexp"
	"strings"
)

// PatternSet classifies paths with include and exclude regular
// expressions. A path belongs to the set when at least one include
// pattern matches it and no exclude pattern does.
type PatternSet struct {
	include []*regexp.Regexp
	exclude []*regexp.Regexp
}

// CompilePatterns builds a PatternSet from comma-separated regex lists.
// Empty entries are ignored, so an empty string compiles to a set that
// matches nothing.
func CompilePatterns(include, exclude string) (PatternSet, error) {
	inc, err := compilePatternList(include)
	if err != nil {
		return PatternSet{}, err
	}
	exc, err := compilePatternList(exclude)
	if err != nil {
		return PatternSet{}, err
	}
	return PatternSet{include: inc, exclude: exc}, nil
}

func compilePatternList(list string) ([]*regexp.Regexp, error) {
	var patterns []*regexp.Regexp
	for _, raw := range strings.Split(list, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		re, err := regexp.Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", raw, err)
		}
		patterns = append(patterns, re)
	}
	return patterns, nil
}

// Match reports whether path belongs to the set.
func (p PatternSet) Match(path string) bool {
	included := false
	for _, re := range p.include {
		if re.MatchString(path) {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, re := range p.exclude {
		if re.MatchString(path) {
			return false
		}
	}
	return true
}
