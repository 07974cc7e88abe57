package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEffect(t *testing.T) {
	tests := []struct {
		name string
		code string
		want Descriptor
		ok   bool
	}{
		{
			name: "skill value add",
			code: "skills.stealth.value+2",
			want: Descriptor{
				Target: Target{Group: "skills", Key: "stealth", Axis: AxisValue},
				Op:     OpAdd,
				Amount: 2,
			},
			ok: true,
		},
		{
			name: "talent set",
			code: "weaponSkills.unarmed.talent=3",
			want: Descriptor{
				Target: Target{Group: "weaponSkills", Key: "unarmed", Axis: AxisTalent},
				Op:     OpSet,
				Amount: 3,
			},
			ok: true,
		},
		{
			name: "negative separator is a negative add",
			code: "movement-1",
			want: Descriptor{
				Target: Target{Group: "movement"},
				Op:     OpAdd,
				Amount: -1,
			},
			ok: true,
		},
		{
			name: "resource max add",
			code: "resources.health.max+10",
			want: Descriptor{
				Target: Target{Group: "resources", Key: "health"},
				Op:     OpAdd,
				Amount: 10,
			},
			ok: true,
		},
		{
			name: "attribute add",
			code: "attributes.physique+1",
			want: Descriptor{
				Target: Target{Group: "attributes", Key: "physique"},
				Op:     OpAdd,
				Amount: 1,
			},
			ok: true,
		},
		{
			name: "mitigation add",
			code: "mitigation.cold+1",
			want: Descriptor{
				Target: Target{Group: "mitigation", Key: "cold"},
				Op:     OpAdd,
				Amount: 1,
			},
			ok: true,
		},
		{name: "unknown skill", code: "skills.juggling.value+1"},
		{name: "unknown group", code: "saves.reflex+1"},
		{name: "resource current not targetable", code: "resources.health.current+5"},
		{name: "missing amount", code: "movement+"},
		{name: "missing separator", code: "movement"},
		{name: "non numeric amount", code: "movement+one"},
		{name: "missing axis", code: "skills.stealth+2"},
		{name: "movement with key", code: "movement.walk+1"},
		{name: "empty", code: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseEffect(tt.code, SourceAncestry)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				tt.want.Source = SourceAncestry
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestApplyOp(t *testing.T) {
	assert.Equal(t, 7, applyOp(5, Descriptor{Op: OpAdd, Amount: 2}))
	assert.Equal(t, 3, applyOp(5, Descriptor{Op: OpAdd, Amount: -2}))
	assert.Equal(t, 10, applyOp(5, Descriptor{Op: OpSet, Amount: 10}))
	assert.Equal(t, 0, applyOp(25, Descriptor{Op: OpSet, Amount: 0}))
}
