package sovtoken

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/kaleido-io/sovtoken-core/internal/msgs"
	"github.com/kaleido-io/sovtoken-core/internal/sovi18n"
	"github.com/kaleido-io/sovtoken-core/pkg/sovtypes"
)

// AuthConstraint is the recursive ROLE/AND/OR constraint tree a
// GET_AUTH_RULE reply's result.data values carry. Combination nodes
// (AND/OR) only matter here for their shared fee, never for what they
// otherwise authorize - the core does not evaluate auth rules, it only
// harvests the fee every leaf agrees on.
type AuthConstraint struct {
	ConstraintID string            `json:"constraint_id"`
	Fee          *sovtypes.TokenAmount
	Children     []AuthConstraint
}

type authConstraintWire struct {
	ConstraintID    string                `json:"constraint_id"`
	Metadata        *authConstraintMeta   `json:"metadata"`
	AuthConstraints []authConstraintWire  `json:"auth_constraints"`
}

type authConstraintMeta struct {
	Fees *sovtypes.TokenAmount `json:"fees"`
}

// UnmarshalJSON decodes either a ROLE leaf ({"constraint_id":"ROLE",
// "metadata":{"fees":…}}) or an AND/OR combination
// ({"constraint_id":"AND"|"OR","auth_constraints":[…]}).
func (c *AuthConstraint) UnmarshalJSON(data []byte) error {
	var wire authConstraintWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	c.ConstraintID = wire.ConstraintID
	if wire.Metadata != nil {
		c.Fee = wire.Metadata.Fees
	}
	if len(wire.AuthConstraints) > 0 {
		c.Children = make([]AuthConstraint, len(wire.AuthConstraints))
		for i, child := range wire.AuthConstraints {
			childBytes, err := json.Marshal(child)
			if err != nil {
				return err
			}
			if err := c.Children[i].UnmarshalJSON(childBytes); err != nil {
				return err
			}
		}
	}
	return nil
}

// feeOf recurses through an AND/OR tree down to its ROLE leaves and
// returns the single fee they all agree on (nil if none carry a fee),
// failing if two leaves disagree.
func (c *AuthConstraint) feeOf(ctx context.Context, constraintKey string) (*sovtypes.TokenAmount, error) {
	if len(c.Children) == 0 {
		return c.Fee, nil
	}
	var agreed *sovtypes.TokenAmount
	seen := false
	for i := range c.Children {
		childFee, err := c.Children[i].feeOf(ctx, constraintKey)
		if err != nil {
			return nil, err
		}
		if !seen {
			agreed = childFee
			seen = true
			continue
		}
		if !feesEqual(agreed, childFee) {
			return nil, sovi18n.NewError(ctx, msgs.MsgAuthRuleFeeConflict, constraintKey, amountOrZero(agreed), amountOrZero(childFee))
		}
	}
	return agreed, nil
}

func feesEqual(a, b *sovtypes.TokenAmount) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func amountOrZero(a *sovtypes.TokenAmount) sovtypes.TokenAmount {
	if a == nil {
		return 0
	}
	return *a
}

type getAuthRuleReplyResult struct {
	Data map[string]AuthConstraint `json:"data"`
}

// ParseGetAuthRuleReply implements the GET_AUTH_RULE reply parser (S6): the
// result.data map keys are "--"-delimited constraint ids whose first
// segment is the ledger transaction type; every key sharing a transaction
// type must agree on a single fee (or have none), else the reply is
// rejected as malformed. Transaction types with no fee anywhere in their
// constraints are omitted from the returned map.
func ParseGetAuthRuleReply(ctx context.Context, replyJSON string) (map[string]sovtypes.TokenAmount, error) {
	env, err := classifyReply(ctx, []byte(replyJSON))
	if err != nil {
		return nil, err
	}
	var result getAuthRuleReplyResult
	if err := json.Unmarshal(env.Result, &result); err != nil {
		return nil, sovi18n.WrapError(ctx, msgs.MsgMalformedReply, err)
	}

	perType := map[string]*sovtypes.TokenAmount{}
	seenType := map[string]bool{}

	for constraintKey, constraint := range result.Data {
		txnType := txnTypeOf(constraintKey)
		fee, err := constraint.feeOf(ctx, constraintKey)
		if err != nil {
			return nil, err
		}

		if !seenType[txnType] {
			perType[txnType] = fee
			seenType[txnType] = true
			continue
		}
		if !feesEqual(perType[txnType], fee) {
			return nil, sovi18n.NewError(ctx, msgs.MsgAuthRuleFeeConflict, txnType, amountOrZero(perType[txnType]), amountOrZero(fee))
		}
	}

	fees := map[string]sovtypes.TokenAmount{}
	for txnType, fee := range perType {
		if fee != nil {
			fees[txnType] = *fee
		}
	}
	return fees, nil
}

func txnTypeOf(constraintKey string) string {
	parts := strings.SplitN(constraintKey, "--", 2)
	return parts[0]
}
