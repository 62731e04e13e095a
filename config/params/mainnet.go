package params

// MainnetConfig returns the Deneb-level constants for Ethereum mainnet.
// Values are wired verbatim from the consensus specification; holesky and
// sepolia differ only in fork versions and fork epochs.
func MainnetConfig() *BeaconChainConfig {
	return &BeaconChainConfig{
		ConfigName: "mainnet",

		SecondsPerSlot: 12,
		SlotsPerEpoch:  32,
		GenesisSlot:    0,
		GenesisEpoch:   0,

		SlotsPerHistoricalRoot:    8192,
		EpochsPerHistoricalVector: 65536,
		EpochsPerSlashingsVector:  8192,
		EpochsPerEth1VotingPeriod: 64,
		SlotsPerHistoricalSummary: 8192 / 32,

		MinSeedLookahead:             1,
		MaxSeedLookahead:             4,
		ShuffleRoundCount:            90,
		MinEpochsToInactivityPenalty: 4,

		MaxEffectiveBalance:          32_000_000_000,
		EffectiveBalanceIncrement:   1_000_000_000,
		EjectionBalance:             16_000_000_000,
		HysteresisQuotient:          4,
		HysteresisDownwardMultiplier: 1,
		HysteresisUpwardMultiplier:  5,

		MinPerEpochChurnLimit:           4,
		ChurnLimitQuotient:              65536,
		MaxPerEpochActivationChurnLimit: 8,

		MinValidatorWithdrawabilityDelay: 256,
		ShardCommitteePeriod:             256,
		MinAttestationInclusionDelay:     1,

		TargetCommitteeSize:       128,
		MaxCommitteesPerSlot:      64,
		MaxValidatorsPerCommittee: 2048,

		SyncCommitteeSize:            512,
		EpochsPerSyncCommitteePeriod: 256,

		BaseRewardFactor: 64,

		ProposerWeight:     8,
		SyncRewardWeight:   2,
		WeightDenominator:  64,
		TimelySourceWeight: 14,
		TimelyTargetWeight: 26,
		TimelyHeadWeight:   14,

		ProportionalSlashingMultiplierBellatrix: 3,
		MinSlashingPenaltyQuotient:              128,
		WhistleblowerRewardQuotient:             512,

		InactivityScoreBias:             4,
		InactivityScoreRecoveryRate:     16,
		InactivityPenaltyQuotientAltair: 1 << 36,

		MaxRandomByte:                    255,
		MaxDeposits:                      16,
		MaxWithdrawalsPerPayload:         16,
		MaxValidatorsPerWithdrawalsSweep: 16384,
		MaxBlobsPerBlock:                 6,
		MaxVoluntaryExits:                16,
		MaxProposerSlashings:             16,
		MaxAttesterSlashings:             2,
		MaxAttestations:                  128,
		MaxBlsToExecutionChanges:         16,

		FarFutureEpoch:           1<<64 - 1,
		JustificationBitsLength:  4,
		DepositContractTreeDepth: 32,
		VersionedHashVersionKZG:  0x01,

		BLSWithdrawalPrefixByte:         0x00,
		ETH1AddressWithdrawalPrefixByte: 0x01,

		DomainBeaconProposer:       [4]byte{0x00, 0x00, 0x00, 0x00},
		DomainBeaconAttester:       [4]byte{0x01, 0x00, 0x00, 0x00},
		DomainRandao:               [4]byte{0x02, 0x00, 0x00, 0x00},
		DomainDeposit:              [4]byte{0x03, 0x00, 0x00, 0x00},
		DomainVoluntaryExit:        [4]byte{0x04, 0x00, 0x00, 0x00},
		DomainSelectionProof:       [4]byte{0x05, 0x00, 0x00, 0x00},
		DomainAggregateAndProof:    [4]byte{0x06, 0x00, 0x00, 0x00},
		DomainSyncCommittee:        [4]byte{0x07, 0x00, 0x00, 0x00},
		DomainBLSToExecutionChange: [4]byte{0x0A, 0x00, 0x00, 0x00},
		DomainApplicationMask:      [4]byte{0x00, 0x00, 0x00, 0x01},

		GenesisForkVersion:   [4]byte{0x00, 0x00, 0x00, 0x00},
		AltairForkVersion:    [4]byte{0x01, 0x00, 0x00, 0x00},
		BellatrixForkVersion: [4]byte{0x02, 0x00, 0x00, 0x00},
		CapellaForkVersion:   [4]byte{0x03, 0x00, 0x00, 0x00},
		DenebForkVersion:     [4]byte{0x04, 0x00, 0x00, 0x00},

		AltairForkEpoch:    74240,
		BellatrixForkEpoch: 144896,
		CapellaForkEpoch:   194048,
		DenebForkEpoch:     269568,

		TimelySourceFlagIndex: 0,
		TimelyTargetFlagIndex: 1,
		TimelyHeadFlagIndex:   2,
	}
}

// HoleskyConfig returns the Holesky testnet configuration: identical shape
// to mainnet, with earlier fork epochs and a distinct genesis fork version.
func HoleskyConfig() *BeaconChainConfig {
	cfg := MainnetConfig()
	cfg.ConfigName = "holesky"
	cfg.GenesisForkVersion = [4]byte{0x01, 0x01, 0x70, 0x00}
	cfg.AltairForkVersion = [4]byte{0x02, 0x01, 0x70, 0x00}
	cfg.BellatrixForkVersion = [4]byte{0x03, 0x01, 0x70, 0x00}
	cfg.CapellaForkVersion = [4]byte{0x04, 0x01, 0x70, 0x00}
	cfg.DenebForkVersion = [4]byte{0x05, 0x01, 0x70, 0x00}
	cfg.AltairForkEpoch = 0
	cfg.BellatrixForkEpoch = 0
	cfg.CapellaForkEpoch = 256
	cfg.DenebForkEpoch = 29696
	return cfg
}

// SepoliaConfig returns the Sepolia testnet configuration.
func SepoliaConfig() *BeaconChainConfig {
	cfg := MainnetConfig()
	cfg.ConfigName = "sepolia"
	cfg.GenesisForkVersion = [4]byte{0x90, 0x00, 0x00, 0x69}
	cfg.AltairForkVersion = [4]byte{0x90, 0x00, 0x00, 0x70}
	cfg.BellatrixForkVersion = [4]byte{0x90, 0x00, 0x00, 0x71}
	cfg.CapellaForkVersion = [4]byte{0x90, 0x00, 0x00, 0x72}
	cfg.DenebForkVersion = [4]byte{0x90, 0x00, 0x00, 0x73}
	cfg.AltairForkEpoch = 50
	cfg.BellatrixForkEpoch = 100
	cfg.CapellaForkEpoch = 56832
	cfg.DenebForkEpoch = 132608
	return cfg
}
