// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nonfungible_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tokenledger/fault"
	"github.com/bitmark-inc/tokenledger/nonfungible"
)

func TestMintAndOwnerOf(t *testing.T) {
	l, _ := newTestLedger()

	_, err := l.OwnerOf(7)
	assert.Equal(t, fault.NonExistentToken, err, "phantom token")

	err = l.Mint(alice, 7)
	assert.Nil(t, err, "mint error")

	owner, err := l.OwnerOf(7)
	assert.Nil(t, err, "owner of error")
	assert.Equal(t, alice, owner, "wrong owner")
	assert.Equal(t, uint64(1), l.Balance(alice), "wrong balance")

	err = l.Mint(bob, 7)
	assert.Equal(t, fault.TokenIDInUse, err, "duplicate mint allowed")

	owner, err = l.OwnerOf(7)
	assert.Nil(t, err, "owner of error")
	assert.Equal(t, alice, owner, "failed mint changed the owner")
}

func TestSequentialMint(t *testing.T) {
	l, _ := newTestLedger()

	assert.Equal(t, nonfungible.TokenID(0), l.NextTokenID(), "counter not at zero")

	for i := uint64(0); i < 3; i += 1 {
		id, err := l.SequentialMint(alice)
		assert.Nil(t, err, "sequential mint error")
		assert.Equal(t, nonfungible.TokenID(i), id, "wrong token id")
	}
	assert.Equal(t, nonfungible.TokenID(3), l.NextTokenID(), "wrong counter")
	assert.Equal(t, uint64(3), l.Balance(alice), "wrong balance")
}

func TestTransfer(t *testing.T) {
	l, _ := newTestLedger()

	err := l.Mint(alice, 1)
	assert.Nil(t, err, "mint error")

	err = l.Transfer(alice, bob, 1)
	assert.Nil(t, err, "transfer error")

	owner, err := l.OwnerOf(1)
	assert.Nil(t, err, "owner of error")
	assert.Equal(t, bob, owner, "wrong owner after transfer")
	assert.Equal(t, uint64(0), l.Balance(alice), "wrong sender balance")
	assert.Equal(t, uint64(1), l.Balance(bob), "wrong recipient balance")

	// only the current owner can move the token
	err = l.Transfer(alice, carol, 1)
	assert.Equal(t, fault.IncorrectOwner, err, "transfer by previous owner allowed")

	_, err = l.OwnerOf(2)
	assert.Equal(t, fault.NonExistentToken, err, "phantom token")
	err = l.Transfer(bob, carol, 2)
	assert.Equal(t, fault.NonExistentToken, err, "transfer of unminted token allowed")
}

func TestApprove(t *testing.T) {
	l, clock := newTestLedger()

	err := l.Mint(alice, 1)
	assert.Nil(t, err, "mint error")

	_, ok := l.GetApproved(1)
	assert.False(t, ok, "phantom approval")

	// only the owner or an operator can approve
	err = l.Approve(bob, carol, 1, clock.CurrentTick()+100)
	assert.Equal(t, fault.InvalidApprover, err, "approval by stranger allowed")

	err = l.Approve(alice, bob, 1, clock.CurrentTick()-1)
	assert.Equal(t, fault.InvalidLiveUntilLedger, err, "approval expiring in the past allowed")

	err = l.Approve(alice, bob, 1, clock.MaxAllowedTick()+1)
	assert.Equal(t, fault.InvalidLiveUntilLedger, err, "approval beyond the maximum tick allowed")

	err = l.Approve(alice, bob, 1, clock.CurrentTick()+100)
	assert.Nil(t, err, "approve error")

	approved, ok := l.GetApproved(1)
	assert.True(t, ok, "missing approval")
	assert.Equal(t, bob, approved, "wrong approved account")

	// a zero live-until tick clears the slot
	err = l.Approve(alice, bob, 1, 0)
	assert.Nil(t, err, "revoking approve error")
	_, ok = l.GetApproved(1)
	assert.False(t, ok, "approval not cleared")
}

func TestApprovalExpiry(t *testing.T) {
	l, clock := newTestLedger()

	err := l.Mint(alice, 1)
	assert.Nil(t, err, "mint error")

	err = l.Approve(alice, bob, 1, clock.CurrentTick()+100)
	assert.Nil(t, err, "approve error")

	// an approval is live through its live-until tick inclusive
	clock.Advance(100)
	_, ok := l.GetApproved(1)
	assert.True(t, ok, "approval dead on its live-until tick")

	clock.Advance(1)
	_, ok = l.GetApproved(1)
	assert.False(t, ok, "approval not expired")

	err = l.TransferFrom(bob, alice, carol, 1)
	assert.Equal(t, fault.InsufficientApproval, err, "spend of expired approval allowed")
}

func TestTransferFromClearsApproval(t *testing.T) {
	l, clock := newTestLedger()

	err := l.Mint(alice, 1)
	assert.Nil(t, err, "mint error")

	err = l.Approve(alice, bob, 1, clock.CurrentTick()+100)
	assert.Nil(t, err, "approve error")

	err = l.TransferFrom(bob, alice, carol, 1)
	assert.Nil(t, err, "transfer from error")

	owner, err := l.OwnerOf(1)
	assert.Nil(t, err, "owner of error")
	assert.Equal(t, carol, owner, "wrong owner after transfer")

	// the slot must not survive into the new ownership
	_, ok := l.GetApproved(1)
	assert.False(t, ok, "approval outlived the transfer")
}

func TestOperatorApproval(t *testing.T) {
	l, clock := newTestLedger()

	err := l.Mint(alice, 1)
	assert.Nil(t, err, "mint error")
	err = l.Mint(alice, 2)
	assert.Nil(t, err, "mint error")

	assert.False(t, l.IsApprovedForAll(alice, carol), "phantom operator")

	err = l.ApproveForAll(alice, carol, clock.CurrentTick()-1)
	assert.Equal(t, fault.InvalidLiveUntilLedger, err, "operator expiring in the past allowed")

	err = l.ApproveForAll(alice, carol, clock.CurrentTick()+100)
	assert.Nil(t, err, "approve for all error")
	assert.True(t, l.IsApprovedForAll(alice, carol), "missing operator")

	// an operator can move any of the owner's tokens
	err = l.TransferFrom(carol, alice, bob, 1)
	assert.Nil(t, err, "operator transfer error")

	// an operator can grant per-token approvals for the owner
	err = l.Approve(carol, bob, 2, clock.CurrentTick()+100)
	assert.Nil(t, err, "operator approve error")

	// a zero live-until tick revokes the operator
	err = l.ApproveForAll(alice, carol, 0)
	assert.Nil(t, err, "revoking approve for all error")
	assert.False(t, l.IsApprovedForAll(alice, carol), "operator not revoked")

	err = l.TransferFrom(carol, alice, bob, 2)
	assert.Equal(t, fault.InsufficientApproval, err, "revoked operator transfer allowed")
}

func TestOperatorExpiry(t *testing.T) {
	l, clock := newTestLedger()

	err := l.ApproveForAll(alice, carol, clock.CurrentTick()+100)
	assert.Nil(t, err, "approve for all error")

	clock.Advance(100)
	assert.True(t, l.IsApprovedForAll(alice, carol), "operator dead on its live-until tick")

	clock.Advance(1)
	assert.False(t, l.IsApprovedForAll(alice, carol), "operator not expired")
}

func TestCheckSpenderApproval(t *testing.T) {
	l, clock := newTestLedger()

	err := l.Mint(alice, 1)
	assert.Nil(t, err, "mint error")

	assert.Nil(t, l.CheckSpenderApproval(alice, alice, 1), "owner rejected")
	assert.Equal(t, fault.InsufficientApproval, l.CheckSpenderApproval(bob, alice, 1), "stranger accepted")

	err = l.Approve(alice, bob, 1, clock.CurrentTick()+100)
	assert.Nil(t, err, "approve error")
	assert.Nil(t, l.CheckSpenderApproval(bob, alice, 1), "approved account rejected")
}

func TestBurn(t *testing.T) {
	l, _ := newTestLedger()

	err := l.Mint(alice, 1)
	assert.Nil(t, err, "mint error")

	err = l.Burn(bob, 1)
	assert.Equal(t, fault.IncorrectOwner, err, "burn by non-owner allowed")

	err = l.Burn(alice, 1)
	assert.Nil(t, err, "burn error")

	_, err = l.OwnerOf(1)
	assert.Equal(t, fault.NonExistentToken, err, "burned token still owned")
	assert.Equal(t, uint64(0), l.Balance(alice), "wrong balance after burn")
}

func TestBurnFrom(t *testing.T) {
	l, clock := newTestLedger()

	err := l.Mint(alice, 1)
	assert.Nil(t, err, "mint error")

	err = l.BurnFrom(bob, alice, 1)
	assert.Equal(t, fault.InsufficientApproval, err, "burn without approval allowed")

	err = l.Approve(alice, bob, 1, clock.CurrentTick()+100)
	assert.Nil(t, err, "approve error")

	err = l.BurnFrom(bob, alice, 1)
	assert.Nil(t, err, "burn from error")

	_, err = l.OwnerOf(1)
	assert.Equal(t, fault.NonExistentToken, err, "burned token still owned")
}

func TestMetadataAndTokenURI(t *testing.T) {
	l, _ := newTestLedger()

	err := l.Mint(alice, 42)
	assert.Nil(t, err, "mint error")

	_, err = l.Metadata()
	assert.Equal(t, fault.UnsetMetadata, err, "phantom metadata")
	_, err = l.TokenURI(42)
	assert.Equal(t, fault.UnsetMetadata, err, "phantom token uri")

	l.SetMetadata(nonfungible.Metadata{
		Name:    "Test Collection",
		Symbol:  "TSC",
		BaseURI: "https://tokens.test/",
	})

	name, err := l.Name()
	assert.Nil(t, err, "name error")
	assert.Equal(t, "Test Collection", name, "wrong name")

	symbol, err := l.Symbol()
	assert.Nil(t, err, "symbol error")
	assert.Equal(t, "TSC", symbol, "wrong symbol")

	uri, err := l.TokenURI(42)
	assert.Nil(t, err, "token uri error")
	assert.Equal(t, "https://tokens.test/42", uri, "wrong token uri")

	_, err = l.TokenURI(43)
	assert.Equal(t, fault.NonExistentToken, err, "uri for phantom token")
}
