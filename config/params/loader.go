package params

import "fmt"

// NetworkConfig resolves a network identifier to its BeaconChainConfig.
// This is the one piece of the (otherwise out-of-scope) CLI/config loader
// that the core exposes directly, a single configuration knob: "the driver accepts a
// network identifier {mainnet, holesky, sepolia} that selects the
// constants table".
func NetworkConfig(name string) (*BeaconChainConfig, error) {
	switch name {
	case "mainnet", "":
		return MainnetConfig(), nil
	case "holesky":
		return HoleskyConfig(), nil
	case "sepolia":
		return SepoliaConfig(), nil
	default:
		return nil, fmt.Errorf("params: unknown network identifier %q", name)
	}
}
