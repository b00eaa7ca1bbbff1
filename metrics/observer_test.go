package metrics

import (
	"testing"

	"github.com/advanderveer/hashchain/ledger"
	"github.com/advanderveer/go-test"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var _ ledger.Observer = NewChain("")

func TestChainObserverWiring(t *testing.T) {
	conf := ledger.DefaultConf()
	conf.Observer = NewChain("wiring")

	c1 := ledger.NewChain(conf)
	c1.Append("Block 1 Data")
	c1.Append("Block 2 Data")
	test.Equals(t, true, c1.IsValid())

	c1.At(1).SetPayload("Tampered Data")
	test.Equals(t, false, c1.IsValid())

	test.Equals(t, 2.0, testutil.ToFloat64(chainAppendTotal.WithLabelValues("wiring")))
	test.Equals(t, 3.0, testutil.ToFloat64(chainLength.WithLabelValues("wiring")))
	test.Equals(t, 1.0, testutil.ToFloat64(chainValidateTotal.WithLabelValues("wiring", "valid")))
	test.Equals(t, 1.0, testutil.ToFloat64(chainValidateTotal.WithLabelValues("wiring", "invalid")))
}
