package source

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nikgen/internal/region/models"
	"nikgen/pkg/platform/sentinel"
)

const nestedFixture = `{
  "BALI": {
    "ID": "51",
    "Kabupaten/Kota": {
      "KOTA DENPASAR": {
        "ID": "51.71",
        "Kecamatan": {
          "DENPASAR UTARA": {"ID": "51.71.04"},
          "DENPASAR SELATAN": {"ID": "51.71.01"}
        }
      },
      "KAB. KLUNGKUNG": {
        "ID": "51.05",
        "Kecamatan": {
          "NUSA PENIDA": {"ID": "51.05.01"}
        }
      }
    }
  },
  "ACEH": {
    "ID": "11",
    "Kabupaten/Kota": {
      "KAB. ACEH SELATAN": {
        "ID": "11.01",
        "Kecamatan": {
          "BAKONGAN": {"ID": "11.01.01"}
        }
      }
    }
  }
}`

func TestLoadNested(t *testing.T) {
	src, err := LoadNested(strings.NewReader(nestedFixture))
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("provinces are flattened and sorted by code", func(t *testing.T) {
		provinces, err := src.Provinces(ctx)
		require.NoError(t, err)
		want := []models.Entry{{Code: "11", Name: "ACEH"}, {Code: "51", Name: "BALI"}}
		if diff := cmp.Diff(want, provinces); diff != "" {
			t.Errorf("provinces mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("regency codes are the second ID segment", func(t *testing.T) {
		regencies, err := src.Regencies(ctx, "51")
		require.NoError(t, err)
		want := []models.Entry{{Code: "05", Name: "KAB. KLUNGKUNG"}, {Code: "71", Name: "KOTA DENPASAR"}}
		if diff := cmp.Diff(want, regencies); diff != "" {
			t.Errorf("regencies mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("district codes are the third ID segment", func(t *testing.T) {
		districts, err := src.Districts(ctx, "51", "71")
		require.NoError(t, err)
		want := []models.Entry{{Code: "01", Name: "DENPASAR SELATAN"}, {Code: "04", Name: "DENPASAR UTARA"}}
		if diff := cmp.Diff(want, districts); diff != "" {
			t.Errorf("districts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("misses wrap ErrNotFound", func(t *testing.T) {
		_, err := src.Regencies(ctx, "31")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
		_, err = src.Districts(ctx, "11", "71")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}

func TestLoadNested_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid json", `{`},
		{"regency id without province prefix", `{"X":{"ID":"11","Kabupaten/Kota":{"R":{"ID":"12.01","Kecamatan":{}}}}}`},
		{"district id with wrong depth", `{"X":{"ID":"11","Kabupaten/Kota":{"R":{"ID":"11.01","Kecamatan":{"D":{"ID":"11.01"}}}}}}`},
		{"province id not two digits", `{"X":{"ID":"1","Kabupaten/Kota":{}}}`},
		{"province id not numeric", `{"X":{"ID":"AB","Kabupaten/Kota":{}}}`},
		{"regency code not two digits", `{"X":{"ID":"11","Kabupaten/Kota":{"R":{"ID":"11.001","Kecamatan":{}}}}}`},
		{"district code not numeric", `{"X":{"ID":"11","Kabupaten/Kota":{"R":{"ID":"11.01","Kecamatan":{"D":{"ID":"11.01.0x"}}}}}}`},
		{"duplicate province code", `{"X":{"ID":"11","Kabupaten/Kota":{}},"Y":{"ID":"11","Kabupaten/Kota":{}}}`},
		{"duplicate regency code", `{"X":{"ID":"11","Kabupaten/Kota":{"R":{"ID":"11.01","Kecamatan":{}},"S":{"ID":"11.01","Kecamatan":{}}}}}`},
		{"duplicate district code", `{"X":{"ID":"11","Kabupaten/Kota":{"R":{"ID":"11.01","Kecamatan":{"D":{"ID":"11.01.01"},"E":{"ID":"11.01.01"}}}}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadNested(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}
