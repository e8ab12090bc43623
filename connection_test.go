package sigslot

import "testing"

func TestConnection_ValidLifecycle(t *testing.T) {
	var sig Signal[Void]

	conn := sig.Connect(func(Void) {})
	if !conn.Valid() {
		t.Error("Connection should be valid after Connect")
	}

	if !conn.Disconnect() {
		t.Error("Disconnect should return true for a live connection")
	}
	if conn.Valid() {
		t.Error("Connection should be invalid after Disconnect")
	}
	if conn.Disconnect() {
		t.Error("Disconnect should return false once already disconnected")
	}
}

func TestConnection_ZeroValue(t *testing.T) {
	var conn Connection[int]

	if conn.Valid() {
		t.Error("Zero-value connection should report invalid")
	}
	if conn.Disconnect() {
		t.Error("Disconnect on a zero-value connection should return false")
	}

	var other Connection[int]
	if !conn.Equal(other) {
		t.Error("Two zero-value connections should compare equal")
	}
}

func TestConnection_CopiesShareAttachment(t *testing.T) {
	var sig Signal[Void]

	conn := sig.Connect(func(Void) {})
	cpy := conn

	if !conn.Equal(cpy) {
		t.Error("A copy should compare equal to the original")
	}

	if !cpy.Disconnect() {
		t.Error("Disconnect via the copy should succeed")
	}
	if conn.Valid() {
		t.Error("Original handle should observe the disconnect made via the copy")
	}
}

func TestConnection_EqualDistinct(t *testing.T) {
	var sig Signal[Void]

	c1 := sig.Connect(func(Void) {})
	c2 := sig.Connect(func(Void) {})

	if c1.Equal(c2) {
		t.Error("Distinct connections should not compare equal")
	}

	var zero Connection[Void]
	if c1.Equal(zero) {
		t.Error("A live connection should not compare equal to the zero value")
	}
}

func TestConnection_OutlivesSignal(t *testing.T) {
	conn := func() Connection[Void] {
		sig := New[Void]()
		c := sig.Connect(func(Void) {})
		sig.Close()
		return c
	}()

	if conn.Valid() {
		t.Error("Connection should be invalid once its signal is gone")
	}
	if conn.Disconnect() {
		t.Error("Disconnect should return false once its signal is gone")
	}
}
