// Package provision exports vault entries for enrollment in other
// authenticator apps.
//
// Two representations are produced: the otpauth:// URI defined by the Key
// Uri Format, and its QR-code rendering as a PNG (raw bytes or a data URI).
// This package only generates; reading QR images or parsing otpauth URIs
// back into entries is deliberately out of scope.
//
// # Usage
//
//	uri, err := provision.URI(provision.URIParams{
//	    Seed:    entry.Seed,
//	    Account: entry.Name,
//	    Issuer:  entry.Issuer,
//	})
//	if err != nil {
//	    // handle error
//	}
//	png, err := provision.QRPNG(uri, 256)
//
// Note that URIs and QR images embed the seed in the clear. Treat generated
// artifacts like the seed itself.
package provision
