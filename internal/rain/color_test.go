package rain

import "testing"

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#00ffff", RGB{0, 255, 255}, false},
		{"#FF0000", RGB{255, 0, 0}, false},
		{"#0f0", RGB{0, 255, 0}, false},
		{"green", RGB{}, true},
		{"#12345", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRGB(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGB{12, 200, 7}
	if c.Hex() != "#0cc807" {
		t.Errorf("unexpected hex %s", c.Hex())
	}
	back, err := ParseRGB(c.Hex())
	if err != nil || back != c {
		t.Errorf("round trip gave %v, %v", back, err)
	}
}
