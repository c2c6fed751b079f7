package witness_test

import (
	"testing"

	"helios-node/lib/test_utils"
	"helios-node/modules/common/params"
	"helios-node/modules/db/chain/properties"
	"helios-node/modules/witness"

	"github.com/stretchr/testify/assert"
)

func TestHeadSlotDerivation(t *testing.T) {
	props := test_utils.NewMockPropertiesDb(properties.PropertiesRecord{
		GenesisTime:   1_700_000_000_000,
		HeadBlockTime: 1_700_000_000_000 + 1000*params.BLOCK_INTERVAL_MS,
	})

	wc := witness.New(props)
	assert.EqualValues(t, 1000, wc.HeadSlot())
	assert.EqualValues(t, props.Record.HeadBlockTime, wc.HeadBlockTime())
}

func TestHeadSlotTruncatesPartialInterval(t *testing.T) {
	props := test_utils.NewMockPropertiesDb(properties.PropertiesRecord{
		GenesisTime:   0,
		HeadBlockTime: params.BLOCK_INTERVAL_MS*7 + params.BLOCK_INTERVAL_MS/2,
	})

	wc := witness.New(props)
	assert.EqualValues(t, 7, wc.HeadSlot())
}
