package nik

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"nikgen/internal/platform/logger"
	"nikgen/internal/region/mocks"
	"nikgen/pkg/platform/sentinel"
)

var fixedClock = WithClock(func() time.Time { return time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC) })

func quiet() ClientOption {
	return WithLogger(logger.Discard())
}

func TestNewClient_EmbeddedData(t *testing.T) {
	ctx := context.Background()
	client, err := NewClient(ctx, DefaultConfig(), quiet(), fixedClock)
	require.NoError(t, err)

	require.Len(t, client.ListProvinces(), 38)

	result, err := client.Generate(ctx, Options{
		Gender:    Female,
		BirthDate: time.Date(1995, time.June, 20, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	parsed := client.Decode(result)
	require.True(t, parsed.IsValid)
	assert.Equal(t, Female, parsed.Gender)
	assert.Equal(t, 1995, parsed.BirthDate.Year())
	assert.Equal(t, 20, parsed.BirthDate.Day())

	valid, err := client.ValidateFull(ctx, result)
	require.NoError(t, err)
	assert.True(t, valid)

	report, err := client.Inspect(ctx, result)
	require.NoError(t, err)
	assert.NotEmpty(t, report.District.Name)
}

func TestNewClient_Warm(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.Regions.Warm = true
	reg := prometheus.NewRegistry()

	client, err := NewClient(ctx, cfg, quiet(), WithRegisterer(reg))
	require.NoError(t, err)

	_, err = client.ListDistricts(ctx, "51", "71")
	require.NoError(t, err)

	expected := `
# HELP nik_region_cache_lookups_total Region cache lookups by level and result
# TYPE nik_region_cache_lookups_total counter
nik_region_cache_lookups_total{level="district",result="hit"} 1
nik_region_cache_lookups_total{level="district",result="miss"} 20
nik_region_cache_lookups_total{level="regency",result="miss"} 38
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "nik_region_cache_lookups_total"))
}

func TestNewClient_DataDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "provinces.json", `[{"code":"11","name":"ACEH"}]`)
	writeFile(t, dir, "regencies/11.json", `[{"code":"01","name":"KAB. ACEH SELATAN"}]`)
	writeFile(t, dir, "districts/11/01.json", `[{"code":"01","name":"BAKONGAN"}]`)

	cfg := DefaultConfig()
	cfg.Regions.DataDir = dir
	client, err := NewClient(context.Background(), cfg, quiet(), fixedClock)
	require.NoError(t, err)

	result, err := client.Generate(context.Background(), Options{Serial: "0007"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result, "110101"), result)
	assert.True(t, strings.HasSuffix(result, "0007"), result)
}

func TestNewClient_Dataset(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wilayah.json", `{
  "BALI": {
    "ID": "51",
    "Kabupaten/Kota": {
      "KOTA DENPASAR": {
        "ID": "51.71",
        "Kecamatan": {"DENPASAR UTARA": {"ID": "51.71.04"}}
      }
    }
  }
}`)

	cfg := DefaultConfig()
	cfg.Regions.Dataset = filepath.Join(dir, "wilayah.json")
	cfg.Regions.DataDir = "/does/not/matter"
	client, err := NewClient(context.Background(), cfg, quiet(), fixedClock)
	require.NoError(t, err)

	valid, err := client.ValidateFull(context.Background(), "5171041501900001")
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestNewClient_Errors(t *testing.T) {
	t.Run("missing dataset file", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Regions.Dataset = filepath.Join(t.TempDir(), "missing.json")

		_, err := NewClient(context.Background(), cfg, quiet())
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("data dir without province table", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Regions.DataDir = t.TempDir()

		_, err := NewClient(context.Background(), cfg, quiet())
		require.Error(t, err)
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("warm surfaces unreadable segments", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "provinces.json", `[{"code":"11","name":"ACEH"}]`)
		writeFile(t, dir, "regencies/11.json", `{not json`)

		cfg := DefaultConfig()
		cfg.Regions.DataDir = dir
		cfg.Regions.Warm = true

		_, err := NewClient(context.Background(), cfg, quiet())
		require.Error(t, err)

		var dataErr *DataError
		require.ErrorAs(t, err, &dataErr)
		assert.Equal(t, RegencyNotFound, dataErr.Kind)
		assert.ErrorIs(t, err, sentinel.ErrUnavailable)
	})

	t.Run("warm skips provinces without detail", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "provinces.json", `[{"code":"11","name":"ACEH"}]`)

		cfg := DefaultConfig()
		cfg.Regions.DataDir = dir
		cfg.Regions.Warm = true

		_, err := NewClient(context.Background(), cfg, quiet())
		assert.NoError(t, err)
	})
}

func TestNewClient_ProvinceWithoutBundledDetail(t *testing.T) {
	ctx := context.Background()
	client, err := NewClient(ctx, DefaultConfig(), quiet(), fixedClock)
	require.NoError(t, err)

	const jawaBarat = "3201011501900001"
	assert.True(t, client.ValidateFormat(jawaBarat))

	valid, err := client.ValidateFull(ctx, jawaBarat)
	assert.False(t, valid)

	var lookupErr *RegionLookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, LevelRegency, lookupErr.Level)
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	valid, err = client.ValidateFull(ctx, "1101011501900001")
	assert.False(t, valid)
	require.ErrorAs(t, err, &lookupErr)
}

func TestNewClientFromSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)

	t.Run("province failure aborts construction", func(t *testing.T) {
		src.EXPECT().Provinces(gomock.Any()).Return(nil, sentinel.ErrUnavailable)

		_, err := NewClientFromSource(context.Background(), src, quiet())
		assert.True(t, errors.Is(err, sentinel.ErrUnavailable))
	})

	t.Run("offline generation needs provinces only", func(t *testing.T) {
		src.EXPECT().Provinces(gomock.Any()).Return([]Entry{{Code: "34", Name: "DI YOGYAKARTA"}}, nil)

		client, err := NewClientFromSource(context.Background(), src, quiet(), fixedClock)
		require.NoError(t, err)

		result, err := client.GenerateOffline(Options{Gender: Male})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(result, "34"), result)
		assert.True(t, client.ValidateFormat(result))
	})
}

func TestPackageFunctions(t *testing.T) {
	for _, key := range []string{"NIK_REGION_DATA_DIR", "NIK_REGION_DATASET", "NIK_WARM_REGIONS", "NIK_METRICS_ENABLED"} {
		if os.Getenv(key) != "" {
			t.Skipf("%s is set; package functions would not use the embedded dataset", key)
		}
	}
	ctx := context.Background()

	provinces := ListProvinces()
	require.Len(t, provinces, 38)

	regencies, err := ListRegencies(ctx, "34")
	require.NoError(t, err)
	require.NotEmpty(t, regencies)

	districts, err := ListDistricts(ctx, "34", regencies[0].Code)
	require.NoError(t, err)
	require.NotEmpty(t, districts)

	_, err = ListRegencies(ctx, "99")
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))

	result, err := Generate(ctx, Options{ProvinceCode: "34"})
	require.NoError(t, err)
	valid, err := ValidateFull(ctx, result)
	require.NoError(t, err)
	assert.True(t, valid)
	assert.True(t, ValidateFormat(result))
	assert.True(t, Decode(result).IsValid)

	offline, err := GenerateOffline(Options{})
	require.NoError(t, err)
	assert.True(t, ValidateFormat(offline))

	_, err = Parse("12345")
	var formatErr *FormatError
	assert.ErrorAs(t, err, &formatErr)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
