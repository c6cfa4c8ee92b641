package util

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

const (
	Hash256Size       = 32
	MaxHashStringSize = Hash256Size * 2
)

// Hash is the 256 bit double sha256 digest of a block header or
// transaction, stored in internal byte order. The hex form shown to
// users is byte reversed, as bitcoind prints it.
type Hash [Hash256Size]byte

var HashZero = Hash{}
var HashOne = Hash{0x01}

// String returns the hash in the reversed hex order used on the wire
// of RPC interfaces and block explorers.
func (hash Hash) String() string {
	for i := 0; i < Hash256Size/2; i++ {
		hash[i], hash[Hash256Size-1-i] = hash[Hash256Size-1-i], hash[i]
	}
	return hex.EncodeToString(hash[:])
}

func (hash *Hash) ToString() string {
	return hash.String()
}

func (hash *Hash) GetCloneBytes() []byte {
	bytes := make([]byte, Hash256Size)
	copy(bytes, hash[:])
	return bytes
}

func (hash *Hash) ToBigInt() *big.Int {
	return new(big.Int).SetBytes(hash.GetCloneBytes())
}

func (hash *Hash) Cmp(other *Hash) int {
	if hash == nil && other == nil {
		return 0
	} else if hash == nil {
		return -1
	} else if other == nil {
		return 1
	}
	return hash.ToBigInt().Cmp(other.ToBigInt())
}

func (hash *Hash) SetBytes(bytes []byte) error {
	length := len(bytes)
	if length != Hash256Size {
		return fmt.Errorf("invalid hash length of %v , want %v", length, Hash256Size)
	}
	copy(hash[:], bytes)
	return nil
}

func (hash *Hash) IsEqual(target *Hash) bool {
	if hash == nil && target == nil {
		return true
	}
	if hash == nil || target == nil {
		return false
	}
	return *hash == *target
}

func (hash *Hash) IsNull() bool {
	for _, item := range hash {
		if item != 0 {
			return false
		}
	}
	return true
}

func GetHashFromStr(hashStr string) (hash *Hash, err error) {
	hash = new(Hash)
	bytes, err := DecodeHash(hashStr)
	if err != nil {
		return
	}
	hash.SetBytes(bytes)
	return
}

// DecodeHash decodes a hex string in display order into internal byte
// order. Short strings are padded with leading zeros, as bitcoind does
// when parsing truncated hashes.
func DecodeHash(src string) (bytes []byte, err error) {
	if len(src) > MaxHashStringSize {
		return nil, fmt.Errorf("max hash string length is %v bytes", MaxHashStringSize)
	}
	var srcBytes []byte
	var srcLen = len(src)
	if srcLen%2 == 0 {
		srcBytes = []byte(src)
	} else {
		srcBytes = make([]byte, 1+srcLen)
		srcBytes[0] = '0'
		copy(srcBytes[1:], src)
	}
	var reversedHash = make([]byte, Hash256Size)
	_, err = hex.Decode(reversedHash[Hash256Size-hex.DecodedLen(len(srcBytes)):], srcBytes)
	if err != nil {
		return
	}
	bytes = make([]byte, Hash256Size)
	for i, b := range reversedHash[:Hash256Size/2] {
		bytes[i], bytes[Hash256Size-1-i] = reversedHash[Hash256Size-1-i], b
	}
	return
}

// HashFromString is the panicking form of GetHashFromStr, for
// hard coded hashes known to be well formed.
func HashFromString(hexString string) *Hash {
	hash, err := GetHashFromStr(hexString)
	if err != nil {
		panic(err)
	}
	return hash
}
