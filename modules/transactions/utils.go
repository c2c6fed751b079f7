package transactions

import (
	"encoding/json"
	"fmt"

	"helios-node/modules/common"

	"github.com/go-playground/validator/v10"
	cbornode "github.com/ipfs/go-ipld-cbor"
	"github.com/multiformats/go-multihash"
)

var payloadValidator = validator.New(
	validator.WithRequiredStructEnabled(),
)

// EncodePayload builds the canonical payload bytes for a contract.
func EncodePayload(input interface{}) ([]byte, error) {
	return common.EncodeDagCbor(input)
}

// DecodePayload unpacks a contract payload into a typed struct and validates
// it. A failure here means the transaction container handed us garbage.
func DecodePayload(contract TransactionContract, input interface{}) error {
	node, err := cbornode.Decode(contract.Payload, multihash.SHA2_256, -1)
	if err != nil {
		return fmt.Errorf("failed to decode contract payload: %w", err)
	}
	jsonBytes, err := node.MarshalJSON()
	if err != nil {
		return err
	}

	if err := json.Unmarshal(jsonBytes, input); err != nil {
		return err
	}

	return payloadValidator.Struct(input)
}

// Owner extracts the charged (sender) address of a contract.
func (c TransactionContract) Owner() (string, error) {
	payload := ownerPayload{}
	if err := DecodePayload(c, &payload); err != nil {
		return "", err
	}
	return payload.OwnerAddress, nil
}

func (c TransactionContract) TransferPayload() (TransferPayload, error) {
	payload := TransferPayload{}
	err := DecodePayload(c, &payload)
	return payload, err
}

func (c TransactionContract) TransferAssetPayload() (TransferAssetPayload, error) {
	payload := TransferAssetPayload{}
	err := DecodePayload(c, &payload)
	return payload, err
}
