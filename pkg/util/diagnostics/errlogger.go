// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package diagnostics

import (
	"github.com/dusk-network/dusk-base58/pkg/crypto/base58"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// LogCodecError logs a failed encode or decode. Position errors have their
// symbol and index broken out into fields.
func LogCodecError(op string, err error) {
	entry := log.WithField("op", op)

	var perr *base58.PositionError
	if errors.As(err, &perr) {
		entry = entry.WithFields(log.Fields{
			"kind":   perr.Err.Error(),
			"symbol": perr.Symbol,
			"index":  perr.Index,
		})
	}

	entry.WithError(err).Error("base58 operation failed")
}
