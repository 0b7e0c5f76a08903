package crypto_test

import (
	"testing"

	"github.com/mwath/mcli/crypto"
)

var sha1TestCases = map[string]string{
	"Notch": "4ed1f46bbe04bc756bcb17c0c7ce3e4632f06a48",
	"jeb_":  "-7c9d5b0044c130109a5d7b5fb5c317c02b4e28c1",
	"simon": "88e16a1019277b15d58faf0541e11910eb756f6",
}

func TestMinecraftSHA1(t *testing.T) {
	for username, expected := range sha1TestCases {
		actual := crypto.MinecraftSHA1(username)
		if actual != expected {
			t.Errorf("MinecraftSHA1(%q) = %q; want %q", username, actual, expected)
		}
	}
}

func TestComputeServerHash(t *testing.T) {
	// https://github.com/PrismarineJS/node-yggdrasil/blob/c2b1e534dc56d33d8ea0c1ba02ead058b9db07b1/test/index.js#L70
	result := crypto.ComputeServerHash("cat", []byte("cat"), []byte("cat"))
	expected := "-af59e5b1d5d92e5c2c2776ed0e65e90be181f2a"

	if result != expected {
		t.Errorf("ComputeServerHash() = %q, expected %q", result, expected)
	}
}
