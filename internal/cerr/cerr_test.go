// Copyright (c) the condeque authors. All rights reserved.
// Licensed under the MIT License.

package cerr_test

import (
	"errors"
	"testing"

	"github.com/gothreads/condeque/internal/cerr"
	"github.com/stretchr/testify/require"
)

func TestErrorImplementsError(t *testing.T) {
	chk := require.New(t)
	var err error = cerr.Error("boom")
	chk.Equal("boom", err.Error())
}

func TestKindErrorClassificationAndUnwrap(t *testing.T) {
	chk := require.New(t)
	sentinel := cerr.New(cerr.KindNotSupported, "nope")

	var err error = sentinel
	chk.True(errors.Is(err, sentinel))

	var ke *cerr.KindError
	chk.True(errors.As(err, &ke))
	chk.Equal(cerr.KindNotSupported, ke.Kind)
	chk.Equal("nope", ke.Error())
}

func TestKindString(t *testing.T) {
	chk := require.New(t)
	chk.Equal("invalid argument", cerr.KindInvalidArgument.String())
	chk.Equal("no such element", cerr.KindNoSuchElement.String())
	chk.Equal("not supported", cerr.KindNotSupported.String())
	chk.Equal("internal inconsistency", cerr.KindInternalInconsistency.String())
}
