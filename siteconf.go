// Package siteconf holds the configuration of the datasframe blog: the
// metadata, theme, static assets, feeds, pagination, URL style and Markdown
// options read by the static-site generator at build time.
//
// The configuration lives in site.yaml and is embedded into the package.
// Default returns it; Load and Parse read other documents with the same
// strict rules.
package siteconf

import (
	"fmt"
	"sync"

	_ "time/tzdata" // timezone names resolve without a system zoneinfo database
)

var (
	defaultOnce sync.Once
	defaultCfg  SiteConfig
	defaultErr  error
)

// Default returns a copy of the embedded site configuration. The document is
// decoded once; environment overrides do not apply to it.
//
// Default panics if the embedded document is invalid.
func Default() SiteConfig {
	defaultOnce.Do(func() {
		defaultCfg, defaultErr = NewLoader("site.yaml", WithoutEnv()).parse(Document)
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("siteconf: embedded site.yaml: %v", defaultErr))
	}
	return defaultCfg.Clone()
}

// Load reads the document at path, applying environment overrides.
func Load(path string) (SiteConfig, error) {
	return NewLoader(path).Load()
}

// Parse decodes and validates a document without consulting the environment.
func Parse(data []byte) (SiteConfig, error) {
	return NewLoader("", WithoutEnv()).parse(data)
}
