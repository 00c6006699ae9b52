// This file is part of Tactile.
//
// Tactile is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tactile is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tactile.  If not, see <https://www.gnu.org/licenses/>.

package diagnostics

import (
	"github.com/tactile-go/tactile/logger"
)

// Log is a Reporter that forwards notices to the central logger. The Tag
// field is used as the tag for every log entry. The Permission field decides
// whether the entry is made. A nil Permission is the same as logger.Allow.
type Log struct {
	Tag        string
	Permission logger.Permission
}

// Report implements the Reporter interface.
func (l Log) Report(code Code, values ...interface{}) {
	perm := l.Permission
	if perm == nil {
		perm = logger.Allow
	}
	logger.Log(perm, l.Tag, Notice{Code: code, Values: values})
}
