package detectors

import (
	"regexp"

	"github.com/complyscan/complyscan/internal/scanner"
	"github.com/complyscan/complyscan/internal/types"
)

var (
	reWeakHashMD5    = regexp.MustCompile(`(?i)(createHash\(['"]md5|hashlib\.md5|Digest::MD5|md5\.New\(|MessageDigest\.getInstance\(["']MD5)`)
	reWeakHashSHA1   = regexp.MustCompile(`(?i)(createHash\(['"]sha1|hashlib\.sha1|sha1\.New\(|MessageDigest\.getInstance\(["']SHA-?1)`)
	reWeakCipher     = regexp.MustCompile(`(?i)(createCipheriv\(['"](des|rc4)|DES\.new|ECB\b.*cipher|cipher.*\bECB\b)`)
	rePasswordHash   = regexp.MustCompile(`(?i)(bcrypt|argon2|scrypt|pbkdf2)`)
	reHardcodedCred  = regexp.MustCompile(`(?i)(password|passwd|secret|api[_-]?key|auth[_-]?token)\s*[:=]\s*['"][A-Za-z0-9+/_\-!@#$%^&*]{8,}['"]`)
	reTLSDisabled    = regexp.MustCompile(`(?i)(rejectUnauthorized\s*:\s*false|NODE_TLS_REJECT_UNAUTHORIZED|InsecureSkipVerify\s*:\s*true|verify\s*=\s*False|CURLOPT_SSL_VERIFYPEER,\s*(false|0))`)
)

// WeakCrypto flags weak hash and cipher algorithm usage. Every distinct
// weak primitive is reported.
func WeakCrypto(scan *scanner.Result) Outcome {
	return negative(scan.Code(), []pattern{
		{reWeakHashMD5, "MD5 hashing"},
		{reWeakHashSHA1, "SHA-1 hashing"},
		{reWeakCipher, "weak cipher (DES/RC4/ECB)"},
	}, types.StatusFail, []string{
		"Replace MD5/SHA-1 with SHA-256 or better for integrity, bcrypt/argon2 for passwords",
		"Use AES-GCM for symmetric encryption",
	})
}

// PasswordHashing verifies a modern password hashing library is referenced.
func PasswordHashing(scan *scanner.Result) Outcome {
	return presence(scan, rePasswordHash,
		"password hashing library referenced (bcrypt/argon2/scrypt/pbkdf2)",
		"no password hashing library referenced",
		types.StatusFail,
		[]string{"Hash passwords with bcrypt or argon2id, never store them in reversible form"})
}

// HardcodedCredentials flags credential-looking literals assigned in source.
func HardcodedCredentials(scan *scanner.Result) Outcome {
	return negative(scan.Files, []pattern{
		{reHardcodedCred, "hard-coded credential literal"},
	}, types.StatusFail, []string{
		"Move secrets to environment variables or a secrets manager",
		"Rotate any credential that was committed",
	})
}

// TransportSecurity flags disabled certificate verification and plaintext
// HTTP calls to non-local hosts.
func TransportSecurity(scan *scanner.Result) Outcome {
	// no lookahead in regexp, so localhost is filtered manually below
	plainHTTP := regexp.MustCompile(`(?i)(fetch|axios\.\w+|http\.Get)\(['"]http://([a-z0-9.-]+)`)
	var pats []pattern
	pats = append(pats, pattern{reTLSDisabled, "TLS certificate verification disabled"})
	out := negative(scan.Code(), pats, types.StatusFail, []string{
		"Never disable certificate verification outside of tests",
		"Use HTTPS for all external calls and enable HSTS",
	})
	if out.Status == types.StatusNotApplicable {
		return out
	}
	for _, f := range scan.Code() {
		for _, m := range plainHTTP.FindAllStringSubmatch(f.Content, -1) {
			host := m[2]
			if host == "localhost" || host == "127.0.0.1" {
				continue
			}
			out.Findings = append(out.Findings, "plaintext http:// call to "+host+" in "+f.Path)
			if out.Status == types.StatusPass {
				out.Status = types.StatusWarning
				out.Recommendations = append(out.Recommendations, "Use HTTPS for all external calls and enable HSTS")
			}
		}
	}
	return out
}
