package response

import (
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// copyOpts renders ids as their canonical string form.
var copyOpts = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}
