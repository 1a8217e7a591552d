package main

import (
	"net"
	"testing"
)

func TestGuessIpAddress24(t *testing.T) {
	addr := net.IP{192, 168, 0, 1}
	actual, err := guessIpAddress(addr, "42")
	if err != nil {
		t.Fatal(err)
	}
	expected := net.IP{192, 168, 0, 42}
	if !actual.Equal(expected) {
		t.Fatalf("expected %v, actual %v", expected, actual)
	}
}

func TestGuessIpAddress16(t *testing.T) {
	addr := net.IP{192, 168, 0, 1}
	actual, err := guessIpAddress(addr, "15.42")
	if err != nil {
		t.Fatal(err)
	}
	expected := net.IP{192, 168, 15, 42}
	if !actual.Equal(expected) {
		t.Fatalf("expected %v, actual %v", expected, actual)
	}
}

func TestGuessIpAddress0(t *testing.T) {
	addr := net.IP{192, 168, 0, 1}
	actual, err := guessIpAddress(addr, "10.100.15.42")
	if err != nil {
		t.Fatal(err)
	}
	expected := net.IP{10, 100, 15, 42}
	if !actual.Equal(expected) {
		t.Fatalf("expected %v, actual %v", expected, actual)
	}
}

func TestGuessIpAddress32(t *testing.T) {
	addr := net.IP{192, 168, 0, 1}
	actual, err := guessIpAddress(addr, "")
	if err != nil {
		t.Fatal(err)
	}
	if !actual.Equal(addr) {
		t.Fatalf("expected %v, actual %v", addr, actual)
	}
}

func TestSubnetOfListener(t *testing.T) {
	l, err := net.ListenTCP("tcp", &net.TCPAddr{
		IP:   net.ParseIP("127.0.0.1"),
		Port: 12345,
	})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()

	ipnet, err := subnetOfListener(l)
	if err != nil {
		t.Fatalf("SubnetOfListener error: %v", err)
	}
	t.Logf("listener local addr: %v, subnet: %s", l.Addr(), ipnet.String())

	if !ipnet.Contains(net.ParseIP("127.0.0.1")) {
		t.Fatalf("expected subnet %s to contain 127.0.0.1", ipnet.String())
	}
}

func TestCompleteAddress(t *testing.T) {
	local := net.IP{192, 168, 1, 7}
	tests := []struct {
		typed    string
		expected string
	}{
		{"42", "192.168.1.42:7777"},
		{"42:9000", "192.168.1.42:9000"},
		{"0.42:9000", "192.168.0.42:9000"},
		{"10.0.0.3", "10.0.0.3:7777"},
		{"", "192.168.1.7:7777"},
	}
	for _, tt := range tests {
		t.Run(tt.typed, func(t *testing.T) {
			actual, err := completeAddress(local, tt.typed, 7777)
			if err != nil {
				t.Fatal(err)
			}
			if actual != tt.expected {
				t.Fatalf("expected %s, actual %s", tt.expected, actual)
			}
		})
	}
}

func TestCompleteAddressInvalid(t *testing.T) {
	for _, typed := range []string{"1.2.x", "1.2.3.4.5", "1.2.3.4.5:7777"} {
		t.Run(typed, func(t *testing.T) {
			if _, err := completeAddress(net.IP{192, 168, 1, 7}, typed, 7777); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
