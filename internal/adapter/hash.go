package adapter

import (
	"fmt"

	"github.com/minio/highwayhash"
)

var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// contentHash returns a hex HighwayHash-64 of data.
func contentHash(data []byte) (string, error) {
	hash, err := highwayhash.New64(hashKey)
	if err != nil {
		return "", err
	}

	if _, err := hash.Write(data); err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", hash.Sum64()), nil
}
