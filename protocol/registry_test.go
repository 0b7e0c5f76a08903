package protocol_test

import (
	"errors"
	"testing"

	"github.com/mwath/mcli/protocol"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := protocol.NewRegistry()
	if err := reg.Register(func() protocol.Packet { return &fakePacket{} }); err != nil {
		t.Fatalf("Register: %v", err)
	}

	p, ok := reg.Lookup(protocol.Play, protocol.Clientbound, 0)
	if !ok {
		t.Fatal("Lookup() not found")
	}
	if _, ok := p.(*fakePacket); !ok {
		t.Errorf("Lookup() returned %T, want *fakePacket", p)
	}
}

func TestRegistryLookupUnknownIsNonFatal(t *testing.T) {
	reg := protocol.NewRegistry()
	_, ok := reg.Lookup(protocol.Play, protocol.Clientbound, 99)
	if ok {
		t.Error("Lookup() for an unregistered id should report not-found, not panic or error")
	}
}

func TestRegistryDuplicateRegistrationIsHardError(t *testing.T) {
	reg := protocol.NewRegistry()
	if err := reg.Register(func() protocol.Packet { return &fakePacket{} }); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	err := reg.Register(func() protocol.Packet { return &fakePacket{} })
	if !errors.Is(err, protocol.ErrDuplicateSchema) {
		t.Errorf("second Register() err = %v, want ErrDuplicateSchema", err)
	}
}

func TestRegistryKeyOf(t *testing.T) {
	reg := protocol.NewRegistry()
	if err := reg.Register(func() protocol.Packet { return &fakePacket{} }); err != nil {
		t.Fatalf("Register: %v", err)
	}

	state, dir, id, ok := reg.KeyOf(&fakePacket{})
	if !ok || state != protocol.Play || dir != protocol.Clientbound || id != 0 {
		t.Errorf("KeyOf() = (%s, %s, %d, %v)", state, dir, id, ok)
	}

	if _, _, _, ok := reg.KeyOf(&otherPacket{}); ok {
		t.Error("KeyOf() for an unregistered type should report not-found")
	}
}
