package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EventRedemptionActivated  = "redemption-activated"
	EventBasketReplaced       = "basket-replaced"
	EventMinterAdded          = "minter-added"
	EventMinterRemoved        = "minter-removed"
	EventSenderAdded          = "sender-added"
	EventSenderRemoved        = "sender-removed"
	EventReserveAssetUpdated  = "reserve-asset-updated"
	EventOwnershipTransferred = "ownership-transferred"

	EventMinted           = "minted"
	EventRedeemed         = "redeemed"
	EventTreasuryTransfer = "treasury-transfer"
)

type Jsonable interface {
	ToJson() string
	FromJson(jstr string) error
}

// Event is a notification record for external indexers. It is written once
// per successful operation and never on failure.
type Event struct {
	Id         string    `json:"id"`
	Kind       string    `json:"kind"`
	Payload    string    `json:"payload"`
	CreateTime time.Time `json:"create_time"`
}

func NewEvent(kind string, payload Jsonable) *Event {
	return &Event{
		Id:         uuid.NewString(),
		Kind:       kind,
		Payload:    payload.ToJson(),
		CreateTime: time.Now(),
	}
}

type PercentPayload struct {
	Percent int64 `json:"percent"`
}

func (obj *PercentPayload) ToJson() string {
	jstr, err := json.Marshal(obj)
	if err != nil {
		return err.Error()
	}
	return string(jstr)
}

func (obj *PercentPayload) FromJson(jstr string) error {
	err := json.Unmarshal([]byte(jstr), obj)
	return err
}

type AddressPayload struct {
	Address string `json:"address"`
}

func (obj *AddressPayload) ToJson() string {
	jstr, err := json.Marshal(obj)
	if err != nil {
		return err.Error()
	}
	return string(jstr)
}

func (obj *AddressPayload) FromJson(jstr string) error {
	err := json.Unmarshal([]byte(jstr), obj)
	return err
}

type BasketPayload struct {
	Assets []string `json:"assets"`
}

func (obj *BasketPayload) ToJson() string {
	jstr, err := json.Marshal(obj)
	if err != nil {
		return err.Error()
	}
	return string(jstr)
}

func (obj *BasketPayload) FromJson(jstr string) error {
	err := json.Unmarshal([]byte(jstr), obj)
	return err
}

type AmountPayload struct {
	Asset  string `json:"asset,omitempty"`
	From   string `json:"from,omitempty"`
	To     string `json:"to,omitempty"`
	Amount string `json:"amount"`
}

func (obj *AmountPayload) ToJson() string {
	jstr, err := json.Marshal(obj)
	if err != nil {
		return err.Error()
	}
	return string(jstr)
}

func (obj *AmountPayload) FromJson(jstr string) error {
	err := json.Unmarshal([]byte(jstr), obj)
	return err
}
