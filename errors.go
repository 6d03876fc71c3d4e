package nestpath

import (
	"github.com/signadot/nestpath/dict"
	"github.com/signadot/nestpath/ir"
	"github.com/signadot/nestpath/ir/dpath"
)

type (
	PathError         = dpath.PathError
	PathNotFoundError = ir.PathNotFoundError
	ValidationError   = dict.ValidationError
	FrozenPathError   = dict.FrozenPathError
)

var (
	ErrInvalidPath = dpath.ErrInvalidPath
	ErrKeyNotFound = ir.ErrKeyNotFound
	ErrNotFlatMap  = ir.ErrNotFlatMap
	ErrValidation  = dict.ErrValidation
	ErrFrozen      = dict.ErrFrozen
)
