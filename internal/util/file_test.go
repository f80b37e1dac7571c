package util_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Riaraujo/testecrud/internal/util"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestSniffImage(t *testing.T) {
	mt, err := util.SniffImage(bytes.NewReader(pngHeader))
	require.NoError(t, err)
	require.Equal(t, "image/png", mt)

	_, err = util.SniffImage(strings.NewReader("apenas texto"))
	require.Error(t, err)

	svg := `<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`
	_, err = util.SniffImage(strings.NewReader(svg))
	require.Error(t, err)
}

func TestHasAllowedExtension(t *testing.T) {
	require.True(t, util.HasAllowedExtension("Grafico.PNG", util.AllowedImageExtensions))
	require.False(t, util.HasAllowedExtension("notas.txt", util.AllowedImageExtensions))
	require.False(t, util.HasAllowedExtension("png", util.AllowedImageExtensions))
}
