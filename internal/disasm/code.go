package disasm

import (
	"fmt"

	"github.com/Vertridge/Chip8Emulator/internal/instruction"
	"github.com/retroenv/retrogolib/set"
)

const (
	funcNaming  = "_func_%04x"
	labelNaming = "_label_%04x"
)

// BranchTargets returns the set of all addresses that are jumped to or called
// with a fixed target. JP V0 targets depend on register state and are not included.
func BranchTargets(instructions []instruction.Instruction) set.Set[uint16] {
	targets := set.New[uint16]()
	for _, ins := range instructions {
		switch ins := ins.(type) {
		case instruction.Jp:
			targets.Add(ins.NNN)
		case instruction.Call:
			targets.Add(ins.NNN)
		}
	}
	return targets
}

// Labels generates a label name for every branch target. Call destinations
// are named as functions, all other destinations as plain labels.
func Labels(instructions []instruction.Instruction) map[uint16]string {
	calls := set.New[uint16]()
	for _, ins := range instructions {
		if call, ok := ins.(instruction.Call); ok {
			calls.Add(call.NNN)
		}
	}

	targets := BranchTargets(instructions)
	labels := make(map[uint16]string, len(targets))
	for address := range targets {
		if calls.Contains(address) {
			labels[address] = fmt.Sprintf(funcNaming, address)
		} else {
			labels[address] = fmt.Sprintf(labelNaming, address)
		}
	}
	return labels
}
