// Copyright (c) 2024 The duochain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"errors"
	"testing"
)

func TestSelectLifecycle(t *testing.T) {
	resetForTesting()
	defer resetForTesting()

	if _, err := Current(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Current before Select: got %v, want ErrNotInitialized", err)
	}

	params, err := Select(PoWNet)
	if err != nil {
		t.Fatalf("Select(PoWNet): unexpected error %v", err)
	}
	if params.Name != "pow-net" {
		t.Fatalf("Select(PoWNet) returned %q", params.Name)
	}

	if _, err := Select(HybridNet); !errors.Is(err, ErrAlreadyInitialized) {
		t.Fatalf("second Select: got %v, want ErrAlreadyInitialized", err)
	}

	current, err := Current()
	if err != nil {
		t.Fatalf("Current: unexpected error %v", err)
	}
	if current != params {
		t.Fatalf("Current returned a different ChainParams than Select")
	}
}

func TestSelectUnknownNetwork(t *testing.T) {
	resetForTesting()
	defer resetForTesting()

	if _, err := Select(NetworkId(99)); !errors.Is(err, ErrUnknownNetwork) {
		t.Fatalf("Select(99): got %v, want ErrUnknownNetwork", err)
	}
}

func TestPoWNetGenesisHashMatchesPinned(t *testing.T) {
	params := PoWNetParams()
	if got := params.GenesisBlock.BlockHash(); got != params.GenesisHash {
		t.Fatalf("pow-net genesis hash mismatch: got %s want %s", got, params.GenesisHash)
	}
	if got := params.Consensus.HashGenesisBlock; got != params.GenesisHash {
		t.Fatalf("pow-net consensus.HashGenesisBlock does not match GenesisHash")
	}
}

func TestHybridNetGenesisHashMatchesPinned(t *testing.T) {
	params := HybridNetParams()
	if got := params.GenesisBlock.BlockHash(); got != params.GenesisHash {
		t.Fatalf("hybrid-net genesis hash mismatch: got %s want %s", got, params.GenesisHash)
	}
}

func TestStakeTargetSpacingDistinguishesNetworks(t *testing.T) {
	if PoWNetParams().Consensus.StakeTargetSpacing != 0 {
		t.Fatalf("pow-net must have a zero StakeTargetSpacing")
	}
	if HybridNetParams().Consensus.StakeTargetSpacing == 0 {
		t.Fatalf("hybrid-net must have a nonzero StakeTargetSpacing")
	}
}

func TestTestNetAndRegNetSelectWithoutPanicking(t *testing.T) {
	resetForTesting()
	defer resetForTesting()

	if _, err := Select(TestNet); err != nil {
		t.Fatalf("Select(TestNet): unexpected error %v", err)
	}

	resetForTesting()
	if _, err := Select(RegNet); err != nil {
		t.Fatalf("Select(RegNet): unexpected error %v", err)
	}
}
