package milvus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldSchema_Validate(t *testing.T) {
	tests := []struct {
		name    string
		field   *FieldSchema
		wantErr bool
	}{
		{
			name:    "valid varchar primary key",
			field:   NewFieldSchema("id", DataTypeVarChar).WithPrimaryKey(true).WithMaxLength(128),
			wantErr: false,
		},
		{
			name:    "empty name",
			field:   NewFieldSchema("", DataTypeInt64),
			wantErr: true,
		},
		{
			name:    "float primary key",
			field:   NewFieldSchema("id", DataTypeFloat).WithPrimaryKey(true),
			wantErr: true,
		},
		{
			name:    "vector without dimension",
			field:   NewFieldSchema("embedding", DataTypeFloatVector),
			wantErr: true,
		},
		{
			name:    "varchar without max length",
			field:   NewFieldSchema("title", DataTypeVarChar),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.field.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFieldSchema_WithDimension_NonVector(t *testing.T) {
	f := NewFieldSchema("id", DataTypeInt64).WithDimension(128)
	assert.Equal(t, 0, f.Dimension)
}

func TestCollectionSchema_Validate(t *testing.T) {
	valid := func() *CollectionSchema {
		return NewCollectionSchema("wiki_chunks", "article chunk vectors").
			AddField(NewFieldSchema("id", DataTypeVarChar).WithPrimaryKey(true).WithMaxLength(128)).
			AddField(NewFieldSchema("embedding", DataTypeFloatVector).WithDimension(1536))
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("no primary key", func(t *testing.T) {
		s := NewCollectionSchema("wiki_chunks", "").
			AddField(NewFieldSchema("embedding", DataTypeFloatVector).WithDimension(1536))
		assert.Error(t, s.Validate())
	})

	t.Run("no vector field", func(t *testing.T) {
		s := NewCollectionSchema("wiki_chunks", "").
			AddField(NewFieldSchema("id", DataTypeInt64).WithPrimaryKey(true))
		assert.Error(t, s.Validate())
	})

	t.Run("two primary keys", func(t *testing.T) {
		s := valid().AddField(NewFieldSchema("id2", DataTypeInt64).WithPrimaryKey(true))
		assert.Error(t, s.Validate())
	})

	t.Run("empty name", func(t *testing.T) {
		s := valid()
		s.Name = ""
		assert.Error(t, s.Validate())
	})
}

func TestCollectionSchema_ToEntity(t *testing.T) {
	s := NewCollectionSchema("wiki_chunks", "article chunk vectors").
		AddField(NewFieldSchema("id", DataTypeVarChar).WithPrimaryKey(true).WithMaxLength(128)).
		AddField(NewFieldSchema("embedding", DataTypeFloatVector).WithDimension(1536))
	require.NoError(t, s.Validate())

	es := s.ToEntity()
	require.Len(t, es.Fields, 2)
	assert.Equal(t, "wiki_chunks", es.CollectionName)
	assert.True(t, es.Fields[0].PrimaryKey)

	dim, err := es.Fields[1].GetDim()
	require.NoError(t, err)
	assert.Equal(t, int64(1536), dim)
}

func TestCollectionSchema_Accessors(t *testing.T) {
	s := NewCollectionSchema("wiki_chunks", "").
		AddField(NewFieldSchema("id", DataTypeVarChar).WithPrimaryKey(true).WithMaxLength(128)).
		AddField(NewFieldSchema("embedding", DataTypeFloatVector).WithDimension(1536))

	pk := s.GetPrimaryKey()
	require.NotNil(t, pk)
	assert.Equal(t, "id", pk.Name)

	vectors := s.GetVectorFields()
	require.Len(t, vectors, 1)
	assert.Equal(t, "embedding", vectors[0].Name)
}
