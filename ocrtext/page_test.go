package ocrtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flexacc/flexacc/ocrtext/readingorder"
)

const pageSample = `<?xml version="1.0"?>
<PcGts xmlns="http://schema.primaresearch.org/PAGE/gts/pagecontent/2019-07-15">
  <Page imageWidth="1000" imageHeight="1000">
    <ReadingOrder>
      <OrderedGroup>
        <RegionRefIndexed index="1" regionRef="r2"/>
        <RegionRefIndexed index="0" regionRef="r1"/>
      </OrderedGroup>
    </ReadingOrder>
    <TextRegion id="r1">
      <Coords points="0,0 100,0 100,50 0,50"/>
      <TextLine id="r1l1">
        <TextEquiv><Unicode>first line</Unicode></TextEquiv>
      </TextLine>
      <TextEquiv><Unicode>first region</Unicode></TextEquiv>
    </TextRegion>
    <TextRegion id="r2">
      <Coords points="0,100 100,100 100,150 0,150"/>
      <TextLine id="r2l1">
        <TextEquiv><Unicode>second line</Unicode></TextEquiv>
      </TextLine>
    </TextRegion>
  </Page>
</PcGts>`

func TestExtractPAGE_FollowsExplicitReadingOrder(t *testing.T) {
	doc, err := extractPAGE([]byte(pageSample), Options{})
	require.NoError(t, err)
	require.Len(t, doc.Lines, 2)
	assert.Equal(t, "first region", doc.Lines[0].Text)
	assert.Equal(t, "second line", doc.Lines[1].Text)
}

func TestExtractPAGE_LineLevelEmitsPerTextLine(t *testing.T) {
	doc, err := extractPAGE([]byte(pageSample), Options{TextEquivLevel: LevelLine})
	require.NoError(t, err)
	require.Len(t, doc.Lines, 2)
	assert.Equal(t, "first line", doc.Lines[0].Text)
	assert.Equal(t, "second line", doc.Lines[1].Text)
}

func TestExtractPAGE_DocumentOrderIgnoresReadingOrderGroup(t *testing.T) {
	doc, err := extractPAGE([]byte(pageSample), Options{ReadingOrderStrategy: readingorder.Document})
	require.NoError(t, err)
	require.Len(t, doc.Lines, 2)
	assert.Equal(t, "first region", doc.Lines[0].Text)
	assert.Equal(t, "second line", doc.Lines[1].Text)
}

func TestExtractPAGE_GridStrategyOrdersByTopLeft(t *testing.T) {
	doc, err := extractPAGE([]byte(pageSample), Options{ReadingOrderStrategy: readingorder.Grid, GridSize: 10})
	require.NoError(t, err)
	require.Len(t, doc.Lines, 2)
	assert.Equal(t, "first region", doc.Lines[0].Text)
	assert.Equal(t, "second line", doc.Lines[1].Text)
}

func TestExtractTopLeft_ParsesMinimumCorner(t *testing.T) {
	x, y, err := extractTopLeft("50,50 100,10 10,100")
	require.NoError(t, err)
	assert.Equal(t, 10, x)
	assert.Equal(t, 10, y)
}

func TestExtractTopLeft_RejectsMalformedPoints(t *testing.T) {
	_, _, err := extractTopLeft("not-a-point")
	assert.Error(t, err)
}

func TestExtractBytes_SniffsPAGERoot(t *testing.T) {
	doc, err := ExtractBytes([]byte(pageSample), Options{})
	require.NoError(t, err)
	assert.Equal(t, "first region\nsecond line", doc.Text())
}
