package enc

// NOTE: The alphabet and its restrictions follow base128.c from IODINE project.
/*
 * Copyright (c) 2006-2014 Erik Ekman <yarrick@kryo.se>,
 * 2006-2009 Bjorn Andersson <flex@kryo.se>
 * Mostly rewritten 2009 J.A.Bezemer@opensourcepartners.nl
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

import (
	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
)

const (

	/*
	 * Don't use '-' (restricted to middle of labels), prefer iso_8859-1
	 * accent chars since they might readily be entered in normal use,
	 * don't use 254-255 because of possible function overloading in DNS systems.
	 */
	cb128 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
		"\274\275\276\277" +
		"\300\301\302\303\304\305\306\307\310\311\312\313\314\315\316\317" +
		"\320\321\322\323\324\325\326\327\330\331\332\333\334\335\336\337" +
		"\340\341\342\343\344\345\346\347\350\351\352\353\354\355\356\357" +
		"\360\361\362\363\364\365\366\367\370\371\372\373\374\375"
)

var cb128Invert = func() map[byte]byte {
	res := make(map[byte]byte, len(cb128))
	for i, v := range []byte(cb128) {
		res[v] = byte(i)
	}
	return res
}()

// -------------------------------------------------------

// Base128 encodes 7 bytes to 8 characters. It uses 8-bit characters, so it only suits channels
// which do not mangle them.
var Base128 Encoder = &codec{
	name:  "Base128",
	code:  'V',
	ratio: 8.0 / 7.0,
	patterns: []string{
		"aA-Aaahhh-Drink-mal-ein-J\344germeister-",
		"aA-La-fl\373te-na\357ve-fran\347aise-est-retir\351-\340-Cr\350te",
		"aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ",
		"aA0123456789\274\275\276\277\300\301\302\303\304\305\306\307\310\311\312\313\314\315\316\317",
		"aA\320\321\322\323\324\325\326\327\330\331\332\333\334\335\336\337\340\341\342\343\344\345\346\347\350\351\352\353\354\355\356\357\360\361\362\363\364\365\366\367\370\371\372\373\374\375",
	},
	encode: encode128,
	decode: decode128,
}

// encode128 works like QuintetAt, only with 7-bit groups: each input byte is split between the
// currently pending group and the next one.
func encode128(src []byte) string {
	dst := make([]byte, 0, (len(src)*8+6)/7)

	shift := uint(1)
	pending := byte(0)

	for _, val := range src {
		dst = append(dst, pending|(val>>shift))
		pending = (val & (1<<shift - 1)) << (7 - shift)

		if shift == 7 {
			dst = append(dst, pending)
			pending = 0
			shift = 0
		}
		shift++
	}

	if len(src)%7 != 0 {
		dst = append(dst, pending)
	}
	return string(escape128(dst))
}

func escape128(src []byte) []byte {
	res := make([]byte, len(src))
	for i, v := range src {
		res[i] = cb128[v]
	}
	return res
}

func unescape128(src []byte) ([]byte, error) {
	res := make([]byte, len(src))
	for i, v := range src {
		r, ok := cb128Invert[v]
		if !ok {
			return nil, errors.Errorf("invalid base128 character %q at position %d", v, i)
		}
		res[i] = r
	}
	return res, nil
}

func decode128(data string) ([]byte, error) {
	src, err := unescape128([]byte(data))
	if err != nil {
		return nil, err
	}
	res, err := base128.DecodeString(string(src))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}
