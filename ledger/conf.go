package ledger

import (
	"time"

	"github.com/advanderveer/hashchain/ledger/clock"
	"github.com/advanderveer/hashchain/ledger/digest"
	"go.uber.org/zap"
)

//Clock provides the timestamps that new blocks are stamped with
type Clock interface {
	Now() time.Time
}

//Observer is told about appends and validations, for example to export metrics
type Observer interface {
	ObserveAppend(length int)
	ObserveValidate(err error, started time.Time)
}

type nopObserver struct{}

func (nopObserver) ObserveAppend(int) {}
func (nopObserver) ObserveValidate(error, time.Time) {}

//Conf configures a chain
type Conf struct {
	//Clock stamps every block, including the genesis
	Clock Clock

	//Hash binds the blocks together, it must produce digest.Size bytes
	Hash digest.Func

	//Logger receives debug information about appends and failed validations
	Logger *zap.Logger

	//Observer is called after each append and validation
	Observer Observer
}

//DefaultConf returns sensible defaults
func DefaultConf() *Conf {
	return &Conf{
		Clock:    clock.NewWallClock(),
		Hash:     digest.SHA256,
		Logger:   zap.NewNop(),
		Observer: nopObserver{},
	}
}

//withDefaults fills any zero fields, it doesn't modify the receiver
func (c *Conf) withDefaults() *Conf {
	def := DefaultConf()
	if c == nil {
		return def
	}

	cc := *c
	if cc.Clock == nil {
		cc.Clock = def.Clock
	}
	if cc.Hash == nil {
		cc.Hash = def.Hash
	}
	if cc.Logger == nil {
		cc.Logger = def.Logger
	}
	if cc.Observer == nil {
		cc.Observer = def.Observer
	}

	return &cc
}
