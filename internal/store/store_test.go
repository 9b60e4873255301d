package store_test

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"testing"

	"agentid/internal/crypto"
	"agentid/internal/delegation"
	"agentid/internal/domain"
	"agentid/internal/store"
)

func testRequestID(rec domain.Record) ([32]byte, error) {
	return sha256.Sum256([]byte(fmt.Sprintf("%v", rec))), nil
}

func TestKeyStore_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()
	pass := "pass"

	var ks domain.KeyStore = store.NewKeyFileStore(home)

	seed := bytes.Repeat([]byte{9}, 32)
	if err := ks.SaveKey(pass, append([]byte(nil), seed...)); err != nil {
		t.Fatalf("save key: %v", err)
	}

	got, err := ks.LoadKey(pass)
	if err != nil {
		t.Fatalf("load key: %v", err)
	}
	if !bytes.Equal(got, seed) {
		t.Fatal("seed mismatch after load")
	}
}

func TestKeyStore_WrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	var ks domain.KeyStore = store.NewKeyFileStore(home)

	if err := ks.SaveKey("correct", bytes.Repeat([]byte{1}, 32)); err != nil {
		t.Fatalf("save key: %v", err)
	}
	if _, err := ks.LoadKey("wrong"); err == nil {
		t.Fatal("expected error with wrong passphrase")
	}
}

func TestChainStore_RoundTrip(t *testing.T) {
	home := t.TempDir()
	cs := store.NewChainFileStore(home)

	root, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	leaf, err := crypto.GenerateEd25519()
	if err != nil {
		t.Fatalf("GenerateEd25519: %v", err)
	}
	chain, err := delegation.Create(context.Background(), root, leaf.Public(), testRequestID, nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := cs.SaveChain(chain); err != nil {
		t.Fatalf("save chain: %v", err)
	}
	got, ok, err := cs.LoadChain()
	if err != nil {
		t.Fatalf("load chain: %v", err)
	}
	if !ok {
		t.Fatal("chain not found after save")
	}
	if !bytes.Equal(got.RootPublicKey(), chain.RootPublicKey()) || got.Len() != chain.Len() {
		t.Fatal("chain mismatch after load")
	}
}

func TestChainStore_Missing(t *testing.T) {
	cs := store.NewChainFileStore(t.TempDir())
	if _, ok, err := cs.LoadChain(); err != nil || ok {
		t.Fatalf("want (false, nil) for a missing chain, got ok=%v err=%v", ok, err)
	}
}
