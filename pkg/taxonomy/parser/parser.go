package parser

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	taxErrors "privacyhq/meridian/pkg/taxonomy/errors"
	"privacyhq/meridian/pkg/taxonomy/resource"
	"privacyhq/meridian/pkg/taxonomy/validator"
)

// Parser parses taxonomy manifest files. A manifest is a YAML document
// whose top-level keys name resource kinds (data_category, system,
// dataset, ...), each holding a list of resources of that kind.
//
// Parsing yields a normalized but not yet validated Taxonomy; the
// taxonomy package facade runs validation on top.
type Parser struct {
	maxFileSize int64
	logger      *slog.Logger
}

// NewParser creates a parser with default configuration.
func NewParser() *Parser {
	return &Parser{
		maxFileSize: 10 * 1024 * 1024, // 10MB
		logger:      slog.Default(),
	}
}

// WithMaxFileSize sets the maximum manifest file size.
func (p *Parser) WithMaxFileSize(size int64) *Parser {
	p.maxFileSize = size
	return p
}

// WithLogger sets the logger used for deprecation warnings.
func (p *Parser) WithLogger(logger *slog.Logger) *Parser {
	p.logger = logger
	return p
}

// Parse parses a manifest file into a normalized Taxonomy.
func (p *Parser) Parse(path string) (*resource.Taxonomy, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, &taxErrors.Error{
			Type:    taxErrors.ErrorTypeIO,
			Message: fmt.Sprintf("failed to access manifest: %v", err),
		}
	}
	if fileInfo.Size() > p.maxFileSize {
		return nil, &taxErrors.Error{
			Type:    taxErrors.ErrorTypeIO,
			Message: fmt.Sprintf("manifest size %d exceeds maximum %d bytes", fileInfo.Size(), p.maxFileSize),
		}
	}

	node, err := parseYAMLFile(path)
	if err != nil {
		return nil, &taxErrors.Error{
			Type:    taxErrors.ErrorTypeSyntax,
			Message: fmt.Sprintf("YAML parsing failed for %s: %v", path, err),
		}
	}

	return p.build(node, path)
}

// ParseBytes parses manifest YAML from a byte slice. The source name
// is used in warnings only.
func (p *Parser) ParseBytes(data []byte, source string) (*resource.Taxonomy, error) {
	if int64(len(data)) > p.maxFileSize {
		return nil, &taxErrors.Error{
			Type:    taxErrors.ErrorTypeIO,
			Message: fmt.Sprintf("manifest size %d exceeds maximum %d bytes", len(data), p.maxFileSize),
		}
	}

	node, err := parseYAMLBytes(data)
	if err != nil {
		return nil, &taxErrors.Error{
			Type:    taxErrors.ErrorTypeSyntax,
			Message: fmt.Sprintf("YAML parsing failed for %s: %v", source, err),
		}
	}

	return p.build(node, source)
}

// ParseMulti parses several manifest files and merges them into a
// single Taxonomy. Resources are appended in file order; ordering
// within a kind is then re-normalized.
func (p *Parser) ParseMulti(paths []string) (*resource.Taxonomy, error) {
	if len(paths) == 0 {
		return nil, &taxErrors.Error{
			Type:    taxErrors.ErrorTypeIO,
			Message: "no manifest files provided",
		}
	}

	merged := resource.NewTaxonomy()
	for _, path := range paths {
		t, err := p.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		merged.Merge(t)
	}

	validator.Normalize(merged)
	return merged, nil
}

// build rewrites legacy keys on the raw tree, decodes it into typed
// resources, and applies defaults and canonical ordering.
func (p *Parser) build(node *yaml.Node, source string) (*resource.Taxonomy, error) {
	if promoted := promoteLegacyKeys(node); promoted > 0 {
		p.logger.Warn("the fidesops_meta field is deprecated, use fides_meta instead",
			"source", source,
			"occurrences", promoted,
		)
	}

	taxonomy := resource.NewTaxonomy()
	if err := node.Decode(taxonomy); err != nil {
		return nil, &taxErrors.Error{
			Type:    taxErrors.ErrorTypeSyntax,
			Message: fmt.Sprintf("manifest structure invalid in %s: %v", source, err),
		}
	}

	p.warnDeprecations(taxonomy, source)
	validator.Normalize(taxonomy)
	return taxonomy, nil
}

// warnDeprecations logs for fields that still parse but are on their
// way out.
func (p *Parser) warnDeprecations(t *resource.Taxonomy, source string) {
	for i := range t.Systems {
		for j := range t.Systems[i].PrivacyDeclarations {
			if len(t.Systems[i].PrivacyDeclarations[j].DatasetReferences) > 0 {
				p.logger.Warn("the dataset_references field is deprecated, use the egress and ingress fields instead",
					"source", source,
					"system", t.Systems[i].FidesKey,
					"declaration", t.Systems[i].PrivacyDeclarations[j].Name,
				)
			}
		}
	}
}
