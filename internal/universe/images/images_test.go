package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eveuniverse/internal/shared/errors"
)

func TestImageURL(t *testing.T) {
	tests := []struct {
		name     string
		category string
		id       int64
		variant  string
		size     int
		want     string
		wantErr  bool
	}{
		{
			name:     "type icon",
			category: "type", id: 603, variant: "icon", size: 64,
			want: "https://images.evetech.net/types/603/icon?size=64",
		},
		{
			name:     "character portrait",
			category: "character", id: 93330670, variant: "portrait", size: 128,
			want: "https://images.evetech.net/characters/93330670/portrait?size=128",
		},
		{
			name:     "faction routed through corporations",
			category: "faction", id: 500001, variant: "logo", size: 64,
			want: "https://images.evetech.net/corporations/500001/logo?size=64",
		},
		{
			name:     "blueprint copy",
			category: "type", id: 950, variant: "bpc", size: 256,
			want: "https://images.evetech.net/types/950/bpc?size=256",
		},
		{
			name:     "invalid size",
			category: "type", id: 603, variant: "icon", size: 100,
			wantErr: true,
		},
		{
			name:     "size above maximum",
			category: "type", id: 603, variant: "icon", size: 2048,
			wantErr: true,
		},
		{
			name:     "invalid category",
			category: "planet", id: 40161469, variant: "icon", size: 64,
			wantErr: true,
		},
		{
			name:     "invalid variant for category",
			category: "character", id: 93330670, variant: "logo", size: 64,
			wantErr: true,
		},
		{
			name:     "invalid id",
			category: "type", id: 0, variant: "icon", size: 64,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ImageURL(tt.category, tt.id, tt.variant, tt.size)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidInputError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSkinTypeIconURL(t *testing.T) {
	got, err := SkinTypeIconURL(42, 32)
	require.NoError(t, err)
	assert.Equal(t, "https://eveskinserver.kalkoken.net/skin/42/icon?size=32", got)

	_, err = SkinTypeIconURL(42, 48)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidInputError(err))
}
