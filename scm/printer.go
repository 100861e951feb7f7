/*
Copyright (C) 2023-2026  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package scm

import "strings"

// String renders a value as S-expression text. Texts and symbols are
// written raw, so the output of a text is not necessarily re-readable.
func String(v Scmer) string {
	var b strings.Builder
	write(&b, v)
	return b.String()
}

func write(b *strings.Builder, v Scmer) {
	if !v.IsSlice() {
		b.WriteString(v.String())
		return
	}
	b.WriteByte('(')
	for i, x := range v.Slice() {
		if i != 0 {
			b.WriteByte(' ')
		}
		write(b, x)
	}
	b.WriteByte(')')
}
