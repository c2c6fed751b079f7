package witness

import (
	"helios-node/lib/utils"
	a "helios-node/modules/aggregate"
	"helios-node/modules/common/params"
	"helios-node/modules/db/chain/properties"

	"github.com/chebyrash/promise"
)

// Controller derives slot time from the dynamic-properties store. Slots are
// block-height time; one slot per nominal block interval since genesis.
type Controller interface {
	a.Plugin
	HeadSlot() int64
	HeadBlockTime() int64
}

type controller struct {
	props properties.Properties
}

var _ Controller = &controller{}

func New(props properties.Properties) Controller {
	return &controller{props: props}
}

func (w *controller) HeadSlot() int64 {
	return (w.props.GetHeadBlockTime() - w.props.GetGenesisTime()) / params.BLOCK_INTERVAL_MS
}

func (w *controller) HeadBlockTime() int64 {
	return w.props.GetHeadBlockTime()
}

func (w *controller) Init() error {
	return nil
}

func (w *controller) Start() *promise.Promise[any] {
	return utils.PromiseResolve[any](nil)
}

func (w *controller) Stop() error {
	return nil
}
