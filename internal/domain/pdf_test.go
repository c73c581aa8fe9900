package domain

import "testing"

func TestNewCompressionStats(t *testing.T) {
	tests := []struct {
		name              string
		originalSize      int64
		compressedSize    int64
		expectedReduction float64
	}{
		{
			name:              "typical reduction",
			originalSize:      1000000,
			compressedSize:    400000,
			expectedReduction: 60.00,
		},
		{
			name:              "zero original size",
			originalSize:      0,
			compressedSize:    0,
			expectedReduction: 0,
		},
		{
			name:              "no reduction",
			originalSize:      5000,
			compressedSize:    5000,
			expectedReduction: 0,
		},
		{
			name:              "rounded to two decimals",
			originalSize:      3,
			compressedSize:    1,
			expectedReduction: 66.67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := NewCompressionStats(tt.originalSize, tt.compressedSize)

			if stats.OriginalSize != tt.originalSize {
				t.Errorf("Expected OriginalSize %d, got %d", tt.originalSize, stats.OriginalSize)
			}
			if stats.CompressedSize != tt.compressedSize {
				t.Errorf("Expected CompressedSize %d, got %d", tt.compressedSize, stats.CompressedSize)
			}
			if stats.ReductionPercent != tt.expectedReduction {
				t.Errorf("Expected ReductionPercent %v, got %v", tt.expectedReduction, stats.ReductionPercent)
			}
		})
	}
}

func TestCompressionPresets(t *testing.T) {
	presets := CompressionPresets()

	if len(presets) != 3 {
		t.Fatalf("Expected 3 presets, got %d", len(presets))
	}

	expectedOrder := []string{"screen", "ebook", "aggressive"}
	for i, name := range expectedOrder {
		if presets[i].Name != name {
			t.Errorf("Expected preset %d to be %s, got %s", i, name, presets[i].Name)
		}
		if len(presets[i].Args) == 0 {
			t.Errorf("Expected preset %s to have args", name)
		}
	}
}
