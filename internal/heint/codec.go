package heint

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v6/core/rlwe"
)

// EncryptBit client-encrypts a single boolean under enc. Only a ClientKey
// (which alone holds the secret-key-derived Encryptor) can call this; a
// ServerKey never observes a plaintext bit value.
func EncryptBit(enc *rlwe.Encryptor, e *Engine, v bool) (Bit, error) {
	pt := bgvPlaintext(e, []int64{boolToInt(v)})
	ct := rlwe.NewCiphertext(e.Params, 1, pt.Level())
	if err := enc.Encrypt(pt, ct); err != nil {
		return Bit{}, fmt.Errorf("heint: encrypting bit: %w", err)
	}
	return Bit{ct: ct}, nil
}

// DecryptBit recovers the boolean a Bit carries. Only a ClientKey (which
// alone holds the secret-key-derived Decryptor) can call this.
func DecryptBit(dec *rlwe.Decryptor, e *Engine, b Bit) (bool, error) {
	pt := dec.DecryptNew(b.ct)
	values := make([]int64, 1)
	if err := e.Encoder.Decode(pt, values); err != nil {
		return false, fmt.Errorf("heint: decoding bit: %w", err)
	}
	return values[0]&1 == 1, nil
}

func boolToInt(v bool) int64 {
	if v {
		return 1
	}
	return 0
}

// EncryptByte client-encrypts one ASCII byte, bit by bit, MSB-first.
func EncryptByte(enc *rlwe.Encryptor, e *Engine, v byte) (Byte, error) {
	var out Byte
	for i := 0; i < 8; i++ {
		bit, err := EncryptBit(enc, e, v&(1<<uint(7-i)) != 0)
		if err != nil {
			return Byte{}, fmt.Errorf("heint: encrypting byte: %w", err)
		}
		out.Bits[i] = bit
	}
	return out, nil
}

// DecryptByte recovers the ASCII byte value a Byte carries.
func DecryptByte(dec *rlwe.Decryptor, e *Engine, b Byte) (byte, error) {
	var out byte
	for i := 0; i < 8; i++ {
		bit, err := DecryptBit(dec, e, b.Bits[i])
		if err != nil {
			return 0, fmt.Errorf("heint: decrypting byte: %w", err)
		}
		if bit {
			out |= 1 << uint(7-i)
		}
	}
	return out, nil
}

// EncryptU16 client-encrypts a 16-bit count, MSB-first.
func EncryptU16(enc *rlwe.Encryptor, e *Engine, v uint16) (U16, error) {
	var out U16
	for i := 0; i < 16; i++ {
		bit, err := EncryptBit(enc, e, v&(1<<uint(15-i)) != 0)
		if err != nil {
			return U16{}, fmt.Errorf("heint: encrypting u16: %w", err)
		}
		out.Bits[i] = bit
	}
	return out, nil
}

// DecryptU16 recovers the value a U16 carries.
func DecryptU16(dec *rlwe.Decryptor, e *Engine, u U16) (uint16, error) {
	var out uint16
	for i := 0; i < 16; i++ {
		bit, err := DecryptBit(dec, e, u.Bits[i])
		if err != nil {
			return 0, fmt.Errorf("heint: decrypting u16: %w", err)
		}
		if bit {
			out |= 1 << uint(15-i)
		}
	}
	return out, nil
}
