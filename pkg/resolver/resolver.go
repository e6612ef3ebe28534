// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package resolver publishes the extra-account metadata the hosting runtime
// needs to supply the config record to every validation call. The runtime
// cannot infer that requirement on its own; the one-time record written here
// declares it.
package resolver

import (
	"encoding/binary"
	"fmt"

	"github.com/luxfi/capgate/pkg/configstore"
	"github.com/luxfi/capgate/pkg/constants"
	"github.com/luxfi/capgate/pkg/gate"
	"github.com/luxfi/ids"
)

// Seed kinds for address derivation descriptors.
const (
	SeedLiteral    uint8 = 1
	SeedAccountKey uint8 = 2
)

// Seed is one component of a derivation: either a fixed byte string or a
// reference to an account already present in the transfer (by index).
type Seed struct {
	Kind    uint8
	Literal []byte
	Index   uint8
}

// AccountMeta describes one auxiliary account the runtime must resolve and
// pass to the validation engine.
type AccountMeta struct {
	Seeds      []Seed
	IsSigner   bool
	IsWritable bool
}

// MetaList is the ordered, fixed-capacity descriptor sequence stored per
// asset.
type MetaList struct {
	Metas []AccountMeta
}

// ConfigAccountMeta is the single descriptor this engine needs: derive the
// config record from the fixed label and the mint (account index 0); it is
// neither a signer nor writable by the transfer.
func ConfigAccountMeta() AccountMeta {
	return AccountMeta{
		Seeds: []Seed{
			{Kind: SeedLiteral, Literal: []byte(constants.ConfigSeed)},
			{Kind: SeedAccountKey, Index: 0},
		},
	}
}

// Marshal serializes the list: tag, count, then per meta the flags byte and
// its seeds (kind plus kind-specific payload).
func Marshal(list MetaList) []byte {
	buf := []byte{gate.TagExtraAccountMetas, uint8(len(list.Metas))}
	for _, meta := range list.Metas {
		var flags byte
		if meta.IsSigner {
			flags |= 0x01
		}
		if meta.IsWritable {
			flags |= 0x02
		}
		buf = append(buf, flags, uint8(len(meta.Seeds)))
		for _, seed := range meta.Seeds {
			buf = append(buf, seed.Kind)
			switch seed.Kind {
			case SeedLiteral:
				var length [2]byte
				binary.BigEndian.PutUint16(length[:], uint16(len(seed.Literal)))
				buf = append(buf, length[:]...)
				buf = append(buf, seed.Literal...)
			case SeedAccountKey:
				buf = append(buf, seed.Index)
			}
		}
	}
	return buf
}

// Unmarshal parses a descriptor list record.
func Unmarshal(buf []byte) (MetaList, error) {
	if len(buf) < 2 || buf[0] != gate.TagExtraAccountMetas {
		return MetaList{}, fmt.Errorf("%w: not an extra account meta list", gate.ErrInvalidRecord)
	}
	count := int(buf[1])
	pos := 2
	list := MetaList{}
	for i := 0; i < count; i++ {
		if pos+2 > len(buf) {
			return MetaList{}, fmt.Errorf("%w: truncated meta %d", gate.ErrInvalidRecord, i)
		}
		flags := buf[pos]
		seedCount := int(buf[pos+1])
		pos += 2
		meta := AccountMeta{
			IsSigner:   flags&0x01 != 0,
			IsWritable: flags&0x02 != 0,
		}
		for j := 0; j < seedCount; j++ {
			if pos >= len(buf) {
				return MetaList{}, fmt.Errorf("%w: truncated seed %d of meta %d", gate.ErrInvalidRecord, j, i)
			}
			kind := buf[pos]
			pos++
			switch kind {
			case SeedLiteral:
				if pos+2 > len(buf) {
					return MetaList{}, fmt.Errorf("%w: truncated literal seed", gate.ErrInvalidRecord)
				}
				length := int(binary.BigEndian.Uint16(buf[pos : pos+2]))
				pos += 2
				if pos+length > len(buf) {
					return MetaList{}, fmt.Errorf("%w: truncated literal seed", gate.ErrInvalidRecord)
				}
				meta.Seeds = append(meta.Seeds, Seed{Kind: kind, Literal: append([]byte(nil), buf[pos:pos+length]...)})
				pos += length
			case SeedAccountKey:
				if pos >= len(buf) {
					return MetaList{}, fmt.Errorf("%w: truncated account key seed", gate.ErrInvalidRecord)
				}
				meta.Seeds = append(meta.Seeds, Seed{Kind: kind, Index: buf[pos]})
				pos++
			default:
				return MetaList{}, fmt.Errorf("%w: unknown seed kind %d", gate.ErrInvalidRecord, kind)
			}
		}
		list.Metas = append(list.Metas, meta)
	}
	return list, nil
}

// Init writes the descriptor record for mint into its allocated slot. The
// serialized list must fit the fixed slot size; the record is padded to that
// size so readers always see a fixed-length record. A second Init against
// the same mint fails rather than overwriting.
func Init(store *configstore.Store, mint ids.ID) error {
	list := MetaList{Metas: []AccountMeta{ConfigAccountMeta()}}
	raw := Marshal(list)
	if len(raw) > constants.ExtraAccountMetasSize {
		return fmt.Errorf("%w: need %d bytes, slot holds %d",
			gate.ErrInsufficientAccountSpace, len(raw), constants.ExtraAccountMetasSize)
	}
	record := make([]byte, constants.ExtraAccountMetasSize)
	copy(record, raw)
	return store.InitRecord(configstore.ExtraAccountMetasAddress(mint), record)
}

// Load reads and parses the descriptor record for mint.
func Load(store *configstore.Store, mint ids.ID) (MetaList, error) {
	record, err := store.GetRecord(configstore.ExtraAccountMetasAddress(mint))
	if err != nil {
		return MetaList{}, err
	}
	return Unmarshal(record)
}
