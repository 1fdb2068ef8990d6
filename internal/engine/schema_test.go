package engine

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassengerSchemaNames(t *testing.T) {
	assert.Equal(t, []string{
		"PassengerId", "Survived", "Pclass", "Name", "Sex", "Age",
		"SibSp", "Parch", "Ticket", "Fare", "Cabin", "Embarked",
	}, PassengerSchema.Names())
}

func TestColumnParse(t *testing.T) {
	tests := []struct {
		name    string
		column  Column
		raw     string
		want    Value
		wantErr bool
	}{
		{name: "uint", column: Column{Name: "n", Kind: KindUint}, raw: "42", want: Value{Uint: 42}},
		{name: "uint overflow", column: Column{Name: "n", Kind: KindUint}, raw: "4294967296", wantErr: true},
		{name: "uint empty", column: Column{Name: "n", Kind: KindUint}, raw: "", wantErr: true},
		{name: "uint padded", column: Column{Name: "n", Kind: KindUint}, raw: " 1", wantErr: true},
		{name: "float", column: Column{Name: "f", Kind: KindFloat}, raw: "71.2833", want: Value{Float: 71.2833}},
		{name: "float garbage", column: Column{Name: "f", Kind: KindFloat}, raw: "abc", wantErr: true},
		{name: "optional float empty", column: Column{Name: "f", Kind: KindFloat, Optional: true}, raw: "", want: Value{Null: true}},
		{name: "optional float set", column: Column{Name: "f", Kind: KindFloat, Optional: true}, raw: "0.42", want: Value{Float: 0.42}},
		{name: "text verbatim", column: Column{Name: "t", Kind: KindText}, raw: " Male ", want: Value{Text: " Male "}},
		{name: "required text empty", column: Column{Name: "t", Kind: KindText}, raw: "", want: Value{Text: ""}},
		{name: "optional text empty", column: Column{Name: "t", Kind: KindText, Optional: true}, raw: "", want: Value{Null: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.column.Parse(tt.raw)
			if tt.wantErr {
				var fieldErr *FieldError
				require.ErrorAs(t, err, &fieldErr)
				assert.Equal(t, tt.column.Name, fieldErr.Column)
				assert.Equal(t, tt.raw, fieldErr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColumnParseUnwrapsNumError(t *testing.T) {
	_, err := Column{Name: "n", Kind: KindUint}.Parse("4294967296")
	assert.ErrorIs(t, err, strconv.ErrRange)

	_, err = Column{Name: "f", Kind: KindFloat}.Parse("x")
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestBindingDecode(t *testing.T) {
	header := strings.Split(strings.TrimSpace(manifestHeader), ",")
	binding, err := PassengerSchema.Bind(header)
	require.NoError(t, err)

	p, err := binding.Decode([]string{"2", "1", "1", "Cumings, Mrs. John", "female", "38", "1", "0", "PC 17599", "71.2833", "C85", "C"})
	require.NoError(t, err)

	assert.Equal(t, uint32(2), p.PassengerID)
	assert.Equal(t, uint32(1), p.Survived)
	assert.Equal(t, uint32(1), p.Pclass)
	assert.Equal(t, "Cumings, Mrs. John", p.Name)
	assert.Equal(t, "female", p.Sex)
	require.NotNil(t, p.Age)
	assert.Equal(t, 38.0, *p.Age)
	assert.Equal(t, uint32(1), p.SiblingsSpouses)
	assert.Equal(t, uint32(0), p.ParentsChildren)
	assert.Equal(t, "PC 17599", p.Ticket)
	assert.Equal(t, 71.2833, p.Fare)
	require.NotNil(t, p.Cabin)
	assert.Equal(t, "C85", *p.Cabin)
	require.NotNil(t, p.Embarked)
	assert.Equal(t, "C", *p.Embarked)

	p, err = binding.Decode([]string{"6", "0", "3", "Moran, Mr. James", "male", "", "0", "0", "330877", "8.4583", "", ""})
	require.NoError(t, err)
	assert.Nil(t, p.Age)
	assert.Nil(t, p.Cabin)
	assert.Nil(t, p.Embarked)
}

func TestBindingDecodeShortRecord(t *testing.T) {
	header := strings.Split(strings.TrimSpace(manifestHeader), ",")
	binding, err := PassengerSchema.Bind(header)
	require.NoError(t, err)

	_, err = binding.Decode([]string{"1", "0"})
	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "Pclass", fieldErr.Column)
}

func TestBindMissingColumn(t *testing.T) {
	_, err := PassengerSchema.Bind([]string{"PassengerId", "Survived", "Pclass", "Name"})

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "Sex", schemaErr.Column)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), `"Sex"`)
}

func TestBindDuplicateColumn(t *testing.T) {
	header := strings.Split(strings.TrimSpace(manifestHeader), ",")

	_, err := PassengerSchema.Bind(append(header, "Fare"))
	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, "Fare", schemaErr.Column)
	assert.ErrorIs(t, err, ErrDuplicateColumn)

	binding, err := PassengerSchema.Bind(append(header, "Notes", "Notes"))
	require.NoError(t, err)
	assert.NotNil(t, binding)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "unsigned integer", KindUint.String())
	assert.Equal(t, "float", KindFloat.String())
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "unknown", Kind(0).String())
}
