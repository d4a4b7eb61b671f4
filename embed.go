package siteconf

import _ "embed"

// Document is the blog's configuration as shipped in site.yaml.
//
//go:embed site.yaml
var Document []byte
