package domain

import "testing"

func TestCardSizeDimensions(t *testing.T) {
	tests := []struct {
		size       CardSize
		wantWidth  int
		wantHeight int
		wantIcon   int
	}{
		{SizeSmall, 64, 64, 32},
		{SizeMedium, 125, 125, 48},
		{SizeLarge, 500, 250, 64},
	}

	for _, tt := range tests {
		w, h := tt.size.ImageSize()
		if w != tt.wantWidth || h != tt.wantHeight {
			t.Errorf("%s.ImageSize() = (%d, %d), want (%d, %d)", tt.size, w, h, tt.wantWidth, tt.wantHeight)
		}

		if got := tt.size.IconSize(); got != tt.wantIcon {
			t.Errorf("%s.IconSize() = %d, want %d", tt.size, got, tt.wantIcon)
		}
	}
}

func TestPlatformValid(t *testing.T) {
	for _, p := range []Platform{PlatformFacebook, PlatformMastodon, PlatformTwitter} {
		if !p.Valid() {
			t.Errorf("%s.Valid() = false, want true", p)
		}
	}

	if Platform("myspace").Valid() {
		t.Error(`Platform("myspace").Valid() = true, want false`)
	}
}
