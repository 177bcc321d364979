package ocrtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const altoSample = `<?xml version="1.0"?>
<alto xmlns="http://www.loc.gov/standards/alto/ns-v3#">
  <Layout>
    <Page>
      <PrintSpace>
        <TextBlock>
          <TextLine ID="line_1">
            <String CONTENT="Hello"/>
            <String CONTENT="World"/>
          </TextLine>
          <TextLine ID="line_2">
            <String CONTENT="Second"/>
          </TextLine>
        </TextBlock>
      </PrintSpace>
    </Page>
  </Layout>
</alto>`

func TestExtractALTO_JoinsStringsPerLine(t *testing.T) {
	doc, err := extractALTO([]byte(altoSample))
	require.NoError(t, err)
	require.Len(t, doc.Lines, 2)
	assert.Equal(t, "line_1", doc.Lines[0].ID)
	assert.Equal(t, "Hello World", doc.Lines[0].Text)
	assert.Equal(t, "Second", doc.Lines[1].Text)
}

func TestExtractBytes_SniffsALTORoot(t *testing.T) {
	doc, err := ExtractBytes([]byte(altoSample), Options{})
	require.NoError(t, err)
	assert.Equal(t, "Hello World\nSecond", doc.Text())
}
