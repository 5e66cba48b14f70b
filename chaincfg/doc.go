// Package chaincfg defines chain configuration parameters for the two
// supported networks, PoW-net and hybrid-net.
//
// A process selects exactly one network's parameters once, at startup:
//
//  params, err := chaincfg.Select(chaincfg.HybridNet)
//  if err != nil {
//          log.Fatal(err)
//  }
//
// A second call to Select in the same process fails with
// ErrAlreadyInitialized; components that need the active parameters later
// in the process call Current instead.
//
//  params, err := chaincfg.Current()
//
// Select computes the network's genesis block and asserts its hash
// against the pinned constant baked into the ChainParams; a mismatch
// panics rather than returning an error, since no component downstream can
// safely validate anything against a genesis block that does not match.
package chaincfg
