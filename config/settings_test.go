package config

import "testing"

func TestValidateFlagsConflicts(t *testing.T) {
	tests := []struct {
		name           string
		opts           DatabaseOptions
		expectedErrors int
	}{
		{"defaults are valid", DefaultOptions(), 0},
		{
			"compress without store flags a conflict",
			DatabaseOptions{CompressDocuments: true, MinTokenLength: 1, MaxTokenLength: 100},
			1,
		},
		{
			"stemming and lemmatization together is flagged but not fatal",
			DatabaseOptions{UseStemming: true, UseLemmatization: true, MinTokenLength: 1, MaxTokenLength: 100},
			1,
		},
		{
			"max below min is invalid",
			DatabaseOptions{MinTokenLength: 10, MaxTokenLength: 5},
			1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.opts.Validate()
			if len(errs) != tt.expectedErrors {
				t.Errorf("Validate() = %v (len %d), want %d errors", errs, len(errs), tt.expectedErrors)
			}
		})
	}
}

func TestApplyDefaultsFillsZeroLengths(t *testing.T) {
	opts := DatabaseOptions{}
	opts.ApplyDefaults()

	if opts.MinTokenLength != 1 {
		t.Errorf("MinTokenLength = %d, want 1", opts.MinTokenLength)
	}
	if opts.MaxTokenLength != 1000 {
		t.Errorf("MaxTokenLength = %d, want 1000", opts.MaxTokenLength)
	}
}
