package currency_test

import (
	"strings"
	"testing"

	"pos-service/pkg/currency"

	"github.com/stretchr/testify/assert"
)

func TestFormatGourdes(t *testing.T) {
	assert.Equal(t, "150,00 G", currency.FormatGourdes(150))
	assert.Equal(t, "12,50 G", currency.FormatGourdes(12.5))
	assert.Equal(t, "0,00 G", currency.FormatGourdes(0))
}

func TestFormatGourdesGroupsThousands(t *testing.T) {
	got := currency.FormatGourdes(1234.56)
	assert.True(t, strings.HasPrefix(got, "1"), got)
	assert.True(t, strings.HasSuffix(got, "234,56 G"), got)
}
