package detectors

import (
	"strings"
	"testing"

	"github.com/complyscan/complyscan/internal/types"
)

func TestWeakCrypto_ReportsEachPrimitive(t *testing.T) {
	scan := mkScan(map[string]string{
		"hash.js": `crypto.createHash('md5'); crypto.createHash('sha1')`,
	})
	out := WeakCrypto(scan)
	if out.Status != types.StatusFail {
		t.Fatalf("expected fail, got %s", out.Status)
	}
	if len(out.Findings) != 2 {
		t.Fatalf("expected md5 and sha1 both reported, got %v", out.Findings)
	}
}

func TestPasswordHashing(t *testing.T) {
	scan := mkScan(map[string]string{"auth.js": `const bcrypt = require('bcrypt')`})
	if out := PasswordHashing(scan); out.Status != types.StatusPass {
		t.Fatalf("bcrypt present should pass, got %s", out.Status)
	}
	scan = mkScan(map[string]string{"auth.js": `plain text`})
	if out := PasswordHashing(scan); out.Status != types.StatusFail {
		t.Fatalf("absent hashing lib should fail, got %s", out.Status)
	}
}

func TestHardcodedCredentials(t *testing.T) {
	scan := mkScan(map[string]string{
		"config.js": `const apiKey = "abcd1234efgh5678"`,
	})
	out := HardcodedCredentials(scan)
	if out.Status != types.StatusFail {
		t.Fatalf("expected fail, got %s %v", out.Status, out.Findings)
	}
	if len(out.Findings) == 0 || !strings.Contains(out.Findings[0], "config.js") {
		t.Fatalf("finding should reference the offending file, got %v", out.Findings)
	}
}

func TestTransportSecurity_DisabledVerification(t *testing.T) {
	scan := mkScan(map[string]string{
		"client.js": `axios.get(url, { rejectUnauthorized: false })`,
	})
	if out := TransportSecurity(scan); out.Status != types.StatusFail {
		t.Fatalf("disabled TLS verification should fail, got %s", out.Status)
	}
}
