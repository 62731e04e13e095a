// Package params defines the configurable consensus constants used throughout
// the state-transition core. A single BeaconChainConfig is resolved per
// network and held behind a package-level pointer guarded by a sync.RWMutex,
// so concurrent read access during a transition never races with a
// (test-only) config override.
package params

import "sync"

// BeaconChainConfig holds every constant the consensus core needs. Field
// names mirror the SNAKE_CASE constants of the Ethereum consensus specification,
// rewritten to CamelCase.
type BeaconChainConfig struct {
	ConfigName string

	// Time parameters.
	SecondsPerSlot uint64
	SlotsPerEpoch  uint64
	GenesisSlot    uint64
	GenesisEpoch   uint64

	// Ring-buffer sizes.
	SlotsPerHistoricalRoot    uint64
	EpochsPerHistoricalVector uint64
	EpochsPerSlashingsVector  uint64
	EpochsPerEth1VotingPeriod uint64
	SlotsPerHistoricalSummary uint64 // derived: SlotsPerHistoricalRoot / SlotsPerEpoch

	// Seed lookahead / shuffling.
	MinSeedLookahead   uint64
	MaxSeedLookahead   uint64
	ShuffleRoundCount  uint64
	MinEpochsToInactivityPenalty uint64

	// Balances.
	MaxEffectiveBalance            uint64
	EffectiveBalanceIncrement      uint64
	EjectionBalance                uint64
	HysteresisQuotient             uint64
	HysteresisDownwardMultiplier   uint64
	HysteresisUpwardMultiplier     uint64

	// Churn.
	MinPerEpochChurnLimit             uint64
	ChurnLimitQuotient                uint64
	MaxPerEpochActivationChurnLimit   uint64

	// Validator lifecycle delays.
	MinValidatorWithdrawabilityDelay uint64
	ShardCommitteePeriod             uint64
	MinAttestationInclusionDelay     uint64

	// Committees.
	TargetCommitteeSize     uint64
	MaxCommitteesPerSlot    uint64
	MaxValidatorsPerCommittee uint64

	// Sync committee.
	SyncCommitteeSize            uint64
	EpochsPerSyncCommitteePeriod uint64

	// Rewards.
	BaseRewardFactor uint64

	// Weights.
	ProposerWeight               uint64
	SyncRewardWeight             uint64
	WeightDenominator            uint64
	TimelySourceWeight           uint64
	TimelyTargetWeight           uint64
	TimelyHeadWeight             uint64

	// Slashing.
	ProportionalSlashingMultiplierBellatrix uint64
	MinSlashingPenaltyQuotient              uint64
	WhistleblowerRewardQuotient             uint64

	// Inactivity.
	InactivityScoreBias            uint64
	InactivityScoreRecoveryRate    uint64
	InactivityPenaltyQuotientAltair uint64

	// Misc numeric bounds.
	MaxRandomByte                   uint64
	MaxDeposits                     uint64
	MaxWithdrawalsPerPayload        uint64
	MaxValidatorsPerWithdrawalsSweep uint64
	MaxBlobsPerBlock                uint64
	MaxVoluntaryExits               uint64
	MaxProposerSlashings             uint64
	MaxAttesterSlashings             uint64
	MaxAttestations                  uint64
	MaxBlsToExecutionChanges         uint64

	FarFutureEpoch           uint64
	JustificationBitsLength  uint64
	DepositContractTreeDepth uint64
	VersionedHashVersionKZG  byte

	// Withdrawal credential prefixes.
	BLSWithdrawalPrefixByte   byte
	ETH1AddressWithdrawalPrefixByte byte

	// Domain tags (4-byte, little-endian as declared).
	DomainBeaconProposer        [4]byte
	DomainBeaconAttester        [4]byte
	DomainRandao                [4]byte
	DomainDeposit               [4]byte
	DomainVoluntaryExit         [4]byte
	DomainSelectionProof        [4]byte
	DomainAggregateAndProof     [4]byte
	DomainSyncCommittee         [4]byte
	DomainBLSToExecutionChange  [4]byte
	DomainApplicationMask       [4]byte

	// Fork versions (genesis through Deneb).
	GenesisForkVersion   [4]byte
	AltairForkVersion    [4]byte
	BellatrixForkVersion [4]byte
	CapellaForkVersion   [4]byte
	DenebForkVersion     [4]byte

	AltairForkEpoch    uint64
	BellatrixForkEpoch uint64
	CapellaForkEpoch   uint64
	DenebForkEpoch     uint64

	// Participation flag indices.
	TimelySourceFlagIndex uint8
	TimelyTargetFlagIndex uint8
	TimelyHeadFlagIndex   uint8
}

var (
	mu         sync.RWMutex
	activeCfg  = MainnetConfig()
)

// BeaconConfig returns the process-wide active configuration. Tests may
// install a different one with UseBeaconConfig.
func BeaconConfig() *BeaconChainConfig {
	mu.RLock()
	defer mu.RUnlock()
	return activeCfg
}

// UseBeaconConfig installs cfg as the process-wide active configuration and
// returns the previous one, so callers (tests) can restore it.
func UseBeaconConfig(cfg *BeaconChainConfig) *BeaconChainConfig {
	mu.Lock()
	defer mu.Unlock()
	prev := activeCfg
	activeCfg = cfg
	return prev
}

// SpecValues returns the subset of constants that the dynamic SSZ engine
// needs in order to Merkleize/encode config-dependent container sizes
// (ring buffers, committee sizes, list maxima). Keys match the
// dynssz-size tag expressions used in beacon-chain/state/types.
func (c *BeaconChainConfig) SpecValues() map[string]any {
	return map[string]any{
		"SLOTS_PER_HISTORICAL_ROOT":            c.SlotsPerHistoricalRoot,
		"EPOCHS_PER_HISTORICAL_VECTOR":         c.EpochsPerHistoricalVector,
		"EPOCHS_PER_SLASHINGS_VECTOR":          c.EpochsPerSlashingsVector,
		"SYNC_COMMITTEE_SIZE":                  c.SyncCommitteeSize,
		"MAX_VALIDATORS_PER_COMMITTEE":         c.MaxValidatorsPerCommittee,
		"MAX_DEPOSITS":                         c.MaxDeposits,
		"MAX_WITHDRAWALS_PER_PAYLOAD":          c.MaxWithdrawalsPerPayload,
		"MAX_BLOBS_PER_BLOCK":                  c.MaxBlobsPerBlock,
		"MAX_VOLUNTARY_EXITS":                  c.MaxVoluntaryExits,
		"MAX_PROPOSER_SLASHINGS":               c.MaxProposerSlashings,
		"MAX_ATTESTER_SLASHINGS":                c.MaxAttesterSlashings,
		"MAX_ATTESTATIONS":                     c.MaxAttestations,
		"MAX_BLS_TO_EXECUTION_CHANGES":         c.MaxBlsToExecutionChanges,
		"EPOCHS_PER_ETH1_VOTING_PERIOD_TIMES_SLOTS": c.EpochsPerEth1VotingPeriod * c.SlotsPerEpoch,
	}
}
