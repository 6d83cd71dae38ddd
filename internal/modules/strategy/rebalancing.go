package strategy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/aristath/cryptoadvisor/pkg/formulas"
)

// RebalanceThreshold is the absolute weight deviation that triggers a signal.
const RebalanceThreshold = 0.05

// Action is a rebalancing direction.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

// Weight is one asset's share of a portfolio.
type Weight struct {
	Asset  string
	Weight float64
}

// Allocation is an ordered list of asset weights. Weights are not normalized.
// In JSON it is an object whose key order is preserved.
type Allocation []Weight

// Get returns the weight of asset, or 0 if it is absent.
func (a Allocation) Get(asset string) float64 {
	for _, w := range a {
		if w.Asset == asset {
			return w.Weight
		}
	}
	return 0
}

// UnmarshalJSON decodes an object of asset weights in document order.
// A repeated key keeps its first position and takes the last value.
func (a *Allocation) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*a = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("allocation must be a JSON object")
	}

	result := Allocation{}
	index := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		asset := keyTok.(string)

		var weight float64
		if err := dec.Decode(&weight); err != nil {
			return fmt.Errorf("invalid weight for %s: %w", asset, err)
		}

		if i, ok := index[asset]; ok {
			result[i].Weight = weight
			continue
		}
		index[asset] = len(result)
		result = append(result, Weight{Asset: asset, Weight: weight})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*a = result
	return nil
}

// MarshalJSON encodes the allocation as an object in slice order.
func (a Allocation) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, w := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(w.Asset)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatFloat(w.Weight, 'f', -1, 64))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// RebalanceSignal tells the user to move one asset toward its target.
type RebalanceSignal struct {
	Asset        string  `json:"asset"`
	Action       Action  `json:"action"`
	DeviationPct float64 `json:"deviation_pct"`
	Message      string  `json:"message"`
}

// RebalancingSignals compares current against target, in target order.
// Assets held but absent from target are not signaled.
func RebalancingSignals(current, target Allocation) []RebalanceSignal {
	signals := []RebalanceSignal{}

	for _, t := range target {
		deviation := current.Get(t.Asset) - t.Weight
		if math.Abs(deviation) <= RebalanceThreshold {
			continue
		}

		action := ActionBuy
		if deviation > 0 {
			action = ActionSell
		}

		signals = append(signals, RebalanceSignal{
			Asset:        t.Asset,
			Action:       action,
			DeviationPct: formulas.Round(deviation*100, 2),
			Message: fmt.Sprintf("%s %s to reach target allocation of %s%%",
				action, t.Asset, strconv.FormatFloat(formulas.Round(t.Weight*100, 2), 'f', -1, 64)),
		})
	}

	return signals
}
