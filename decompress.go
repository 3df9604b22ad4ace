package gwastools

import (
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"
	"os"

	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

// Compression identifies the compression wrapping a byte stream.
type Compression byte

const (
	CompressionInvalid Compression = iota
	CompressionNone
	// CompressionGzip also covers bgzip: the blocked gzip variant used for
	// the gnomAD .bgz/.tbi files is a valid gzip stream and inflates with a
	// plain gzip reader.
	CompressionGzip
	CompressionZip
	CompressionXZ
	CompressionZ
	CompressionBZip2
)

var compressionSigs = map[Compression][]byte{
	CompressionGzip:  {0x1f, 0x8b, 0x08},
	CompressionZip:   {0x50, 0x4b, 0x03, 0x04},
	CompressionXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	CompressionZ:     {0x1f, 0x9d},
	CompressionBZip2: {0x42, 0x5a, 0x68},
}

// DetectCompression reads the first bytes of r and matches them against
// known magic numbers. A stream with no recognized signature is reported as
// uncompressed.
func DetectCompression(r io.Reader) (Compression, error) {
	buff := make([]byte, 6)
	if _, err := io.ReadFull(r, buff); err != nil {
		return CompressionInvalid, err
	}

Outer:
	for c, sig := range compressionSigs {
		for i := range sig {
			if buff[i] != sig[i] {
				continue Outer
			}
		}
		return c, nil
	}

	return CompressionNone, nil
}

// MaybeDecompress sniffs the compression of f and returns a reader yielding
// the decompressed stream, or f itself if no compression is detected. The
// file offset is rewound after sniffing.
func MaybeDecompress(f *os.File) (io.ReadCloser, error) {
	c, err := DetectCompression(f)
	if err != nil {
		return nil, err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	switch c {
	case CompressionGzip:
		return gzip.NewReader(f)
	case CompressionZip:
		return &nopCloser{zipstream.NewReader(f)}, nil
	case CompressionBZip2:
		return &nopCloser{bzip2.NewReader(f)}, nil
	case CompressionXZ:
		r, err := xz.NewReader(f, 0)
		if err != nil {
			return nil, err
		}
		return &nopCloser{r}, nil
	case CompressionZ:
		// 0x1f 0x9d is Unix compress (LZW), which zlib.NewReader cannot
		// inflate: a .Z input fails here with zlib's header error instead
		// of being passed through as garbage.
		return zlib.NewReader(f)
	}

	return f, nil
}

// nopCloser upgrades readers that have no Close of their own.
type nopCloser struct {
	io.Reader
}

func (c *nopCloser) Close() error {
	return nil
}
