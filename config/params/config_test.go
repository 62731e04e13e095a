package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMainnetConfig_CriticalValues(t *testing.T) {
	cfg := MainnetConfig()
	require.Equal(t, uint64(32), cfg.SlotsPerEpoch)
	require.Equal(t, uint64(8192), cfg.SlotsPerHistoricalRoot)
	require.Equal(t, uint64(65536), cfg.EpochsPerHistoricalVector)
	require.Equal(t, uint64(32_000_000_000), cfg.MaxEffectiveBalance)
	require.Equal(t, uint64(1)<<36, cfg.InactivityPenaltyQuotientAltair)
	require.Equal(t, uint64(1<<64-1), cfg.FarFutureEpoch)
	require.Equal(t, uint8(0), cfg.TimelySourceFlagIndex)
	require.Equal(t, uint8(1), cfg.TimelyTargetFlagIndex)
	require.Equal(t, uint8(2), cfg.TimelyHeadFlagIndex)
}

func TestNetworkConfig_ResolvesKnownNetworks(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{name: "mainnet"},
		{name: "holesky"},
		{name: "sepolia"},
		{name: "", wantErr: false}, // empty defaults to mainnet
		{name: "bogus-network", wantErr: true},
	}
	for _, tt := range tests {
		cfg, err := NetworkConfig(tt.name)
		if tt.wantErr {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		require.NotNil(t, cfg)
	}
}

func TestUseBeaconConfig_RestoresPrevious(t *testing.T) {
	orig := BeaconConfig()
	holesky := HoleskyConfig()
	prev := UseBeaconConfig(holesky)
	require.Equal(t, orig, prev)
	require.Equal(t, "holesky", BeaconConfig().ConfigName)
	UseBeaconConfig(prev)
	require.Equal(t, orig, BeaconConfig())
}

func TestSpecValues_ContainsDynamicSizingConstants(t *testing.T) {
	vals := MainnetConfig().SpecValues()
	require.Equal(t, uint64(8192), vals["SLOTS_PER_HISTORICAL_ROOT"])
	require.Equal(t, uint64(512), vals["SYNC_COMMITTEE_SIZE"])
}
