package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"

	"github.com/nsc-protocol/nsc/app"
	appparams "github.com/nsc-protocol/nsc/app/params"
)

// Scenario is a list of blocks delivered in order by the run command.
type Scenario struct {
	Blocks []ScenarioBlock `yaml:"blocks"`
}

type ScenarioBlock struct {
	// Advance is the time between the previous block and this one, e.g.
	// "1h". Empty keeps the block time.
	Advance string        `yaml:"advance"`
	Msgs    []ScenarioMsg `yaml:"msgs"`
}

type ScenarioMsg struct {
	// Type is the routed message name, e.g. "rewardrouter/MsgStakeNsc".
	Type string `yaml:"type"`
	// Body is the JSON encoding of the message.
	Body string `yaml:"body"`
	// Amount, in whole tokens, sets the "amount" field of the body.
	Amount string `yaml:"amount,omitempty"`
	// ExpectError fails the run when the message succeeds.
	ExpectError bool `yaml:"expect_error,omitempty"`
}

// ParseScenario decodes a YAML scenario.
func ParseScenario(bz []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.UnmarshalStrict(bz, &s); err != nil {
		return nil, errors.Wrap(err, "failed to parse scenario")
	}
	for i, b := range s.Blocks {
		if _, err := b.advance(); err != nil {
			return nil, errors.Wrapf(err, "block %d", i)
		}
	}
	return &s, nil
}

func (b ScenarioBlock) advance() (time.Duration, error) {
	if b.Advance == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(b.Advance)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, errors.Errorf("negative advance %s", b.Advance)
	}
	return d, nil
}

// decode builds the routed message described by m.
func (m ScenarioMsg) decode(r *app.MsgRouter) (any, error) {
	msg, err := r.NewMsg(m.Type)
	if err != nil {
		return nil, err
	}

	body := map[string]json.RawMessage{}
	if strings.TrimSpace(m.Body) != "" {
		if err := json.Unmarshal([]byte(m.Body), &body); err != nil {
			return nil, errors.Wrap(err, "invalid body")
		}
	}
	if m.Amount != "" {
		amount, err := appparams.ParseAmount(m.Amount)
		if err != nil {
			return nil, err
		}
		body["amount"] = json.RawMessage(strconv.Quote(amount.String()))
	}

	bz, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(bz))
	dec.DisallowUnknownFields()
	if err := dec.Decode(msg); err != nil {
		return nil, errors.Wrapf(err, "invalid body for %s", m.Type)
	}
	return msg, nil
}

// RunCmd delivers a scenario file block by block.
func RunCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "Deliver the blocks of a scenario file",
		Long: `Deliver the blocks of a scenario file. Every block is committed after its
messages. A failing message aborts the run unless it is marked expect_error.

Example scenario:

  blocks:
    - advance: 1s
      msgs:
        - type: rewardrouter/MsgStakeNsc
          body: '{"sender": "nsc1..."}'
          amount: "100"
    - advance: 24h
      msgs:
        - type: rewardrouter/MsgClaim
          body: '{"sender": "nsc1..."}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "failed to read scenario")
			}
			scenario, err := ParseScenario(bz)
			if err != nil {
				return err
			}

			nscApp, err := openInitializedApp(cmd, v)
			if err != nil {
				return err
			}
			defer nscApp.Close()

			return runScenario(cmd.OutOrStdout(), nscApp, scenario)
		},
	}
}

func runScenario(out io.Writer, nscApp *app.NscApp, scenario *Scenario) error {
	for i, b := range scenario.Blocks {
		d, err := b.advance()
		if err != nil {
			return err
		}
		if err := nscApp.BeginBlock(nscApp.BlockTime().Add(d)); err != nil {
			return err
		}
		height := nscApp.LastBlockHeight() + 1

		for j, m := range b.Msgs {
			msg, err := m.decode(nscApp.MsgRouter())
			if err != nil {
				return errors.Wrapf(err, "block %d msg %d", i, j)
			}

			res, events, err := nscApp.Deliver(msg)
			switch {
			case err != nil && m.ExpectError:
				fmt.Fprintf(out, "%d %s failed as expected: %s\n", height, m.Type, err)
			case err != nil:
				return errors.Wrapf(err, "block %d msg %d (%s)", i, j, m.Type)
			case m.ExpectError:
				return errors.Errorf("block %d msg %d (%s) succeeded, expected an error", i, j, m.Type)
			default:
				fmt.Fprintf(out, "%d %s ok events=%d%s\n", height, m.Type, len(events), FormatResponse(res))
			}
		}

		if err := nscApp.Commit(); err != nil {
			return errors.Wrapf(err, "failed to commit block %d", i)
		}
	}
	fmt.Fprintf(out, "ran %d blocks, height %d, time %s\n",
		len(scenario.Blocks), nscApp.LastBlockHeight(), nscApp.BlockTime().Format(time.RFC3339))
	return nil
}

var (
	intType   = reflect.TypeOf(math.Int{})
	coinsType = reflect.TypeOf(sdk.Coins{})
)

// FormatResponse renders the fields of a message response as " key=value"
// pairs with amounts in whole tokens.
func FormatResponse(res any) string {
	rv := reflect.ValueOf(res)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return ""
	}

	var sb strings.Builder
	for i := 0; i < rv.NumField(); i++ {
		field := rv.Type().Field(i)
		if !field.IsExported() {
			continue
		}
		key := strings.Split(field.Tag.Get("json"), ",")[0]
		if key == "" {
			key = field.Name
		}
		fmt.Fprintf(&sb, " %s=%s", key, formatValue(rv.Field(i)))
	}
	return sb.String()
}

func formatValue(v reflect.Value) string {
	switch v.Type() {
	case intType:
		return appparams.FormatAmount(v.Interface().(math.Int))
	case coinsType:
		coins := v.Interface().(sdk.Coins)
		parts := make([]string, 0, len(coins))
		for _, c := range coins {
			parts = append(parts, appparams.FormatAmount(c.Amount)+c.Denom)
		}
		return "[" + strings.Join(parts, ",") + "]"
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
