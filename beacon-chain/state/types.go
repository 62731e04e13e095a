// Package state defines every on-chain consensus entity as a plain Go
// struct carrying dynssz struct tags, so beacon-chain/state/sszutil can
// Merkleize/encode/decode any of them against whichever network's constants
// are active, without per-preset code generation.
package state

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/prysmaticlabs/go-bitfield"

	"github.com/ethsentry/beacon-transition/consensus-types/primitives"
)

// Root is an opaque 32-byte Merkle root or state/block hash.
type Root [32]byte

// BLSPubkey is a 48-byte compressed G1 point.
type BLSPubkey [48]byte

// BLSSignature is a 96-byte compressed G2 point.
type BLSSignature [96]byte

// Gwei is a balance denominated in Gwei (1e9 wei).
type Gwei uint64

// Checkpoint is (epoch, root); equal iff both fields are equal. The zero
// value is the sentinel (0, zero-root).
type Checkpoint struct {
	Epoch primitives.Epoch
	Root  Root
}

// Fork describes the previous/current fork versions and the epoch of the
// most recent fork.
type Fork struct {
	PreviousVersion [4]byte
	CurrentVersion  [4]byte
	Epoch           primitives.Epoch
}

// Eth1Data is the eth1 deposit-contract vote payload.
type Eth1Data struct {
	DepositRoot  Root
	DepositCount uint64
	BlockHash    Root
}

// Validator is a registry entry tracking one validator's balance,
// withdrawal credentials, and lifecycle epochs.
type Validator struct {
	Pubkey                     BLSPubkey
	WithdrawalCredentials      [32]byte
	EffectiveBalance           Gwei
	Slashed                    bool
	ActivationEligibilityEpoch primitives.Epoch
	ActivationEpoch            primitives.Epoch
	ExitEpoch                  primitives.Epoch
	WithdrawableEpoch          primitives.Epoch
}

// BeaconBlockHeader is the compact block envelope stored as
// latest_block_header and signed by the proposer.
type BeaconBlockHeader struct {
	Slot          primitives.Slot
	ProposerIndex primitives.ValidatorIndex
	ParentRoot    Root
	StateRoot     Root
	BodyRoot      Root
}

// SignedBeaconBlockHeader pairs a header with its proposer signature.
type SignedBeaconBlockHeader struct {
	Header    *BeaconBlockHeader
	Signature BLSSignature
}

// AttestationData is the payload an attester signs.
type AttestationData struct {
	Slot            primitives.Slot
	Index           primitives.CommitteeIndex
	BeaconBlockRoot Root
	Source          Checkpoint
	Target          Checkpoint
}

// IndexedAttestation names the attesting validators directly, by sorted
// unique index, rather than by committee-relative bit.
type IndexedAttestation struct {
	AttestingIndices []primitives.ValidatorIndex `dynssz-max:"MAX_VALIDATORS_PER_COMMITTEE"`
	Data             *AttestationData
	Signature        BLSSignature
}

// Attestation is the gossip/on-chain form: a committee-relative bitlist of
// participants plus the signed data.
type Attestation struct {
	AggregationBits bitfield.Bitlist
	Data            *AttestationData
	Signature       BLSSignature
}

// ProposerSlashing is evidence of a proposer double-signing two distinct
// headers for the same slot.
type ProposerSlashing struct {
	Header1 *SignedBeaconBlockHeader
	Header2 *SignedBeaconBlockHeader
}

// AttesterSlashing is evidence of a double-vote or surround-vote between
// two indexed attestations.
type AttesterSlashing struct {
	Attestation1 *IndexedAttestation
	Attestation2 *IndexedAttestation
}

// DepositData is the deposit-contract leaf; DepositMessage is the signed
// sub-portion (everything but the signature itself).
type DepositMessage struct {
	Pubkey                BLSPubkey
	WithdrawalCredentials [32]byte
	Amount                Gwei
}

type DepositData struct {
	Pubkey                BLSPubkey
	WithdrawalCredentials [32]byte
	Amount                Gwei
	Signature             BLSSignature
}

// Deposit pairs a DepositData leaf with its Merkle inclusion proof against
// eth1_data.deposit_root.
type Deposit struct {
	Proof [][32]byte `ssz-size:"33,32"`
	Data  *DepositData
}

// VoluntaryExit signals a validator's intent to leave the active set.
type VoluntaryExit struct {
	Epoch          primitives.Epoch
	ValidatorIndex primitives.ValidatorIndex
}

type SignedVoluntaryExit struct {
	Exit      *VoluntaryExit
	Signature BLSSignature
}

// BLSToExecutionChange rotates a validator's withdrawal credentials from a
// BLS pubkey hash to an eth1 execution address.
type BLSToExecutionChange struct {
	ValidatorIndex     primitives.ValidatorIndex
	FromBLSPubkey      BLSPubkey
	ToExecutionAddress common.Address
}

type SignedBLSToExecutionChange struct {
	Change    *BLSToExecutionChange
	Signature BLSSignature
}

// Withdrawal is a single execution-layer balance payout.
type Withdrawal struct {
	Index          uint64
	ValidatorIndex primitives.ValidatorIndex
	Address        common.Address
	Amount         Gwei
}

// SyncAggregate is the sync-committee participation bitvector plus the
// aggregate signature over the prior slot's block root.
type SyncAggregate struct {
	SyncCommitteeBits      bitfield.Bitvector512
	SyncCommitteeSignature BLSSignature
}

// SyncCommittee is the (shared, read-mostly) rotating 512-validator set.
type SyncCommittee struct {
	Pubkeys         [][48]byte `ssz-size:"512,48" dynssz-size:"SYNC_COMMITTEE_SIZE,48"`
	AggregatePubkey [48]byte
}

// ExecutionPayload is the Deneb-level execution-layer block payload.
type ExecutionPayload struct {
	ParentHash    Root
	FeeRecipient  common.Address
	StateRoot     Root
	ReceiptsRoot  Root
	LogsBloom     [256]byte
	PrevRandao    Root
	BlockNumber   uint64
	GasLimit      uint64
	GasUsed       uint64
	Timestamp     uint64
	ExtraData     []byte `ssz-max:"32"`
	BaseFeePerGas [32]byte // little-endian uint256
	BlockHash     Root
	Transactions  [][]byte     `ssz-max:"1048576,1073741824"`
	Withdrawals   []*Withdrawal `dynssz-max:"MAX_WITHDRAWALS_PER_PAYLOAD"`
	BlobGasUsed   uint64
	ExcessBlobGas uint64
}

// ExecutionPayloadHeader is the cached, header-only form stored in
// BeaconState.LatestExecutionPayloadHeader.
type ExecutionPayloadHeader struct {
	ParentHash       Root
	FeeRecipient     common.Address
	StateRoot        Root
	ReceiptsRoot     Root
	LogsBloom        [256]byte
	PrevRandao       Root
	BlockNumber      uint64
	GasLimit         uint64
	GasUsed          uint64
	Timestamp        uint64
	ExtraData        []byte `ssz-max:"32"`
	BaseFeePerGas    [32]byte
	BlockHash        Root
	TransactionsRoot Root
	WithdrawalsRoot  Root
	BlobGasUsed      uint64
	ExcessBlobGas    uint64
}

// HistoricalSummary replaces historical_roots post-Capella: the roots of
// the block_roots and state_roots vectors, snapshotted once per
// SLOTS_PER_HISTORICAL_ROOT period.
type HistoricalSummary struct {
	BlockSummaryRoot Root
	StateSummaryRoot Root
}

// BeaconBlockBody is everything the proposer signs except the header
// envelope fields (slot/proposer/parent/state root), which live directly
// on BeaconBlock/BeaconBlockHeader.
type BeaconBlockBody struct {
	RandaoReveal          BLSSignature
	Eth1Data              *Eth1Data
	Graffiti              [32]byte
	ProposerSlashings     []*ProposerSlashing           `dynssz-max:"MAX_PROPOSER_SLASHINGS"`
	AttesterSlashings     []*AttesterSlashing            `dynssz-max:"MAX_ATTESTER_SLASHINGS"`
	Attestations          []*Attestation                 `dynssz-max:"MAX_ATTESTATIONS"`
	Deposits              []*Deposit                     `dynssz-max:"MAX_DEPOSITS"`
	VoluntaryExits        []*SignedVoluntaryExit         `dynssz-max:"MAX_VOLUNTARY_EXITS"`
	SyncAggregate         *SyncAggregate
	ExecutionPayload      *ExecutionPayload
	BLSToExecutionChanges []*SignedBLSToExecutionChange  `dynssz-max:"MAX_BLS_TO_EXECUTION_CHANGES"`
	BlobKZGCommitments    [][48]byte                      `dynssz-max:"MAX_BLOBS_PER_BLOCK"`
}

// BeaconBlock is the unsigned proposal.
type BeaconBlock struct {
	Slot          primitives.Slot
	ProposerIndex primitives.ValidatorIndex
	ParentRoot    Root
	StateRoot     Root
	Body          *BeaconBlockBody
}

// SignedBeaconBlock pairs a proposal with the proposer's signature over it.
type SignedBeaconBlock struct {
	Block     *BeaconBlock
	Signature BLSSignature
}

// BeaconState is the full consensus snapshot. Every registry-parallel list
// must keep equal length (see Validate in state.go); ring buffers are
// addressed modulo their fixed size.
type BeaconState struct {
	GenesisTime                 uint64
	GenesisValidatorsRoot       Root
	Slot                        primitives.Slot
	Fork                        *Fork
	LatestBlockHeader           *BeaconBlockHeader
	BlockRoots                  [][32]byte `dynssz-size:"SLOTS_PER_HISTORICAL_ROOT,32"`
	StateRoots                  [][32]byte `dynssz-size:"SLOTS_PER_HISTORICAL_ROOT,32"`
	HistoricalRoots              []Root    `ssz-max:"16777216"`
	Eth1Data                     *Eth1Data
	Eth1DataVotes                []*Eth1Data `dynssz-max:"EPOCHS_PER_ETH1_VOTING_PERIOD_TIMES_SLOTS"`
	Eth1DepositIndex              uint64

	Validators                   []*Validator `ssz-max:"1099511627776"`
	Balances                     []Gwei       `ssz-max:"1099511627776"`

	RandaoMixes                  [][32]byte `dynssz-size:"EPOCHS_PER_HISTORICAL_VECTOR,32"`

	Slashings                    []Gwei `dynssz-size:"EPOCHS_PER_SLASHINGS_VECTOR"`

	PreviousEpochParticipation   []byte `ssz-max:"1099511627776"`
	CurrentEpochParticipation    []byte `ssz-max:"1099511627776"`

	JustificationBits            bitfield.Bitvector4
	PreviousJustifiedCheckpoint  Checkpoint
	CurrentJustifiedCheckpoint   Checkpoint
	FinalizedCheckpoint          Checkpoint

	InactivityScores             []uint64 `ssz-max:"1099511627776"`

	CurrentSyncCommittee         *SyncCommittee
	NextSyncCommittee            *SyncCommittee

	LatestExecutionPayloadHeader *ExecutionPayloadHeader

	NextWithdrawalIndex           uint64
	NextWithdrawalValidatorIndex  primitives.ValidatorIndex

	HistoricalSummaries           []*HistoricalSummary `ssz-max:"16777216"`
}
