package ethereum

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ownerA = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	ownerB = common.HexToAddress("0x00000000000000000000000000000000000000b2")
)

func wei(s string) *big.Int {
	v, _ := new(big.Int).SetString(s, 10)
	return v
}

func TestDecodeCampaignsFromABI(t *testing.T) {
	parsed, err := ContractABI()
	require.NoError(t, err)

	packed, err := parsed.Methods[methodGetCampaigns].Outputs.Pack(
		[]*big.Int{big.NewInt(0), big.NewInt(1)},
		[]common.Address{ownerA, ownerB},
		[]string{"Launch", "Promo"},
		[]string{"D", "E"},
		[]*big.Int{wei("1000000000000000000"), wei("2000000000000000000")},
		[]*big.Int{wei("500000000000000000"), wei("1")},
		[]*big.Int{big.NewInt(1700000000), big.NewInt(1700000100)},
		[]*big.Int{big.NewInt(1700604800), big.NewInt(1700000200)},
		[]bool{true, false},
		[]*big.Int{big.NewInt(3), big.NewInt(0)},
	)
	require.NoError(t, err)

	out, err := parsed.Unpack(methodGetCampaigns, packed)
	require.NoError(t, err)

	got, err := decodeCampaigns(out)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, uint64(0), got[0].ID)
	assert.Equal(t, ownerA.Hex(), got[0].Owner)
	assert.Equal(t, "Launch", got[0].Title)
	assert.Equal(t, "1000000000000000000", got[0].Budget.String())
	assert.Equal(t, uint64(1700604800), got[0].EndTime)
	assert.True(t, got[0].IsActive)
	assert.Equal(t, uint64(3), got[0].ParticipantCount)

	assert.Equal(t, "Promo", got[1].Title)
	assert.False(t, got[1].IsActive)
}

func TestDecodeCampaignsEmpty(t *testing.T) {
	parsed, err := ContractABI()
	require.NoError(t, err)

	packed, err := parsed.Methods[methodGetCampaigns].Outputs.Pack(
		[]*big.Int{}, []common.Address{}, []string{}, []string{}, []*big.Int{},
		[]*big.Int{}, []*big.Int{}, []*big.Int{}, []bool{}, []*big.Int{},
	)
	require.NoError(t, err)
	out, err := parsed.Unpack(methodGetCampaigns, packed)
	require.NoError(t, err)

	got, err := decodeCampaigns(out)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDecodeCampaignsLengthMismatch(t *testing.T) {
	out := []interface{}{
		[]*big.Int{big.NewInt(0), big.NewInt(1)},
		[]common.Address{ownerA},
		[]string{"a", "b"},
		[]string{"a", "b"},
		[]*big.Int{big.NewInt(1), big.NewInt(1)},
		[]*big.Int{big.NewInt(1), big.NewInt(1)},
		[]*big.Int{big.NewInt(1), big.NewInt(1)},
		[]*big.Int{big.NewInt(1), big.NewInt(1)},
		[]bool{true, true},
		[]*big.Int{big.NewInt(0), big.NewInt(0)},
	}

	_, err := decodeCampaigns(out)
	assert.ErrorContains(t, err, "length mismatch")
}

func TestDecodeCampaignDetails(t *testing.T) {
	parsed, err := ContractABI()
	require.NoError(t, err)

	packed, err := parsed.Methods[methodGetCampaignDetails].Outputs.Pack(
		ownerB, "Launch", "D", wei("1000000000000000000"), wei("500000000000000000"),
		big.NewInt(1700000000), big.NewInt(1700604800), true, big.NewInt(7),
	)
	require.NoError(t, err)
	out, err := parsed.Unpack(methodGetCampaignDetails, packed)
	require.NoError(t, err)

	got, err := decodeCampaign(5, out)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), got.ID)
	assert.Equal(t, ownerB.Hex(), got.Owner)
	assert.Equal(t, uint64(1700000000), got.StartTime)
	assert.Equal(t, uint64(7), got.ParticipantCount)
}

func TestNewLedgerRejectsBadAddress(t *testing.T) {
	_, err := NewLedger(nil, "not-an-address")
	assert.Error(t, err)
}
