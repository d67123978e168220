package normalizer

import (
	"fmt"

	"feedbuilder/internal/models"
)

// FacebookNormalizer validates a product and maps it into the Facebook Commerce layout.
type FacebookNormalizer struct {
	validator   *Validator
	transformer *Transformer
}

// NewFacebookNormalizer creates a normalizer with the Facebook limits.
func NewFacebookNormalizer() *FacebookNormalizer {
	return &FacebookNormalizer{
		validator:   NewValidator(),
		transformer: NewTransformer(),
	}
}

// Normalize validates p and returns its Facebook record.
func (n *FacebookNormalizer) Normalize(p *models.Product) (Record, error) {
	if err := n.validator.Validate(p); err != nil {
		return nil, fmt.Errorf("facebook normalization failed: %w", err)
	}

	return n.transformer.Transform(p)
}

// IsSupported reports whether platform is "facebook", ignoring case.
func (n *FacebookNormalizer) IsSupported(platform string) bool {
	return matchesPlatform(platform, PlatformFacebook)
}
