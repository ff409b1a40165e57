package tarock

import (
	"errors"
	"fmt"
)

// ErrUnknownContract is returned when a token is not a contract code.
var ErrUnknownContract = errors.New("unrecognized contract")

// Contract identifies the game a declarer plays. Codes with a 1-3 suffix are
// sub-variants of the same family.
type Contract uint8

const (
	NoContract Contract = iota
	ContractT
	ContractR
	ContractS
	ContractP1
	ContractP2
	ContractP3
	ContractSR
	ContractPB1
	ContractPB2
	ContractPB3
	ContractB
	ContractBR
	ContractPO1
	ContractPO2
	ContractPO3
	ContractD
	ContractBO
	ContractPD
	ContractSD
	ContractSPD

	numContracts
)

var contractCodes = [numContracts]string{
	NoContract:  "-",
	ContractT:   "T",
	ContractR:   "R",
	ContractS:   "S",
	ContractP1:  "P1",
	ContractP2:  "P2",
	ContractP3:  "P3",
	ContractSR:  "SR",
	ContractPB1: "PB1",
	ContractPB2: "PB2",
	ContractPB3: "PB3",
	ContractB:   "B",
	ContractBR:  "BR",
	ContractPO1: "PO1",
	ContractPO2: "PO2",
	ContractPO3: "PO3",
	ContractD:   "D",
	ContractBO:  "BO",
	ContractPD:  "PD",
	ContractSD:  "SD",
	ContractSPD: "SPD",
}

var contractsByCode = func() map[string]Contract {
	m := make(map[string]Contract, numContracts-1)
	for c := ContractT; c < numContracts; c++ {
		m[contractCodes[c]] = c
	}
	return m
}()

// ParseContract decodes a contract code, ignoring ASCII case. Only whole codes match.
func ParseContract(s string) (Contract, error) {
	if c, ok := contractsByCode[UpperASCII(s)]; ok {
		return c, nil
	}
	return NoContract, fmt.Errorf("%w: %q", ErrUnknownContract, s)
}

// AllContracts returns every contract in declaration order.
func AllContracts() []Contract {
	out := make([]Contract, 0, numContracts-1)
	for c := ContractT; c < numContracts; c++ {
		out = append(out, c)
	}
	return out
}

// String returns the upper-case code
func (c Contract) String() string {
	if c >= numContracts {
		return "?"
	}
	return contractCodes[c]
}

// Variant returns the numeric suffix (1-3) of family contracts, or 0.
func (c Contract) Variant() int {
	code := c.String()
	last := code[len(code)-1]
	if last >= '1' && last <= '3' {
		return int(last - '0')
	}
	return 0
}
