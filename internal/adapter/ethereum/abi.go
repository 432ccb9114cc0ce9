// Package ethereum implements the ledger ports over an EVM JSON-RPC node
// using go-ethereum.
package ethereum

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const (
	methodGetCampaigns       = "getCampaigns"
	methodGetCampaignDetails = "getCampaignDetails"
	methodGetContractBalance = "getContractBalance"
)

// campaignABI describes the MarketingCampaign contract.
const campaignABI = `[
  {"type":"function","name":"createCampaign","stateMutability":"payable","outputs":[],
   "inputs":[
    {"internalType":"string","name":"_title","type":"string"},
    {"internalType":"string","name":"_description","type":"string"},
    {"internalType":"uint256","name":"_budget","type":"uint256"},
    {"internalType":"uint256","name":"_reward","type":"uint256"},
    {"internalType":"uint256","name":"_duration","type":"uint256"}]},
  {"type":"function","name":"participateInCampaign","stateMutability":"nonpayable","outputs":[],
   "inputs":[{"internalType":"uint256","name":"_campaignId","type":"uint256"}]},
  {"type":"function","name":"claimReward","stateMutability":"nonpayable","outputs":[],
   "inputs":[{"internalType":"uint256","name":"_campaignId","type":"uint256"}]},
  {"type":"function","name":"getCampaigns","stateMutability":"view","inputs":[],
   "outputs":[
    {"internalType":"uint256[]","name":"ids","type":"uint256[]"},
    {"internalType":"address[]","name":"owners","type":"address[]"},
    {"internalType":"string[]","name":"titles","type":"string[]"},
    {"internalType":"string[]","name":"descriptions","type":"string[]"},
    {"internalType":"uint256[]","name":"budgets","type":"uint256[]"},
    {"internalType":"uint256[]","name":"rewards","type":"uint256[]"},
    {"internalType":"uint256[]","name":"startTimes","type":"uint256[]"},
    {"internalType":"uint256[]","name":"endTimes","type":"uint256[]"},
    {"internalType":"bool[]","name":"isActives","type":"bool[]"},
    {"internalType":"uint256[]","name":"participantCounts","type":"uint256[]"}]},
  {"type":"function","name":"getContractBalance","stateMutability":"view","inputs":[],
   "outputs":[{"internalType":"uint256","name":"","type":"uint256"}]},
  {"type":"function","name":"getCampaignDetails","stateMutability":"view",
   "inputs":[{"internalType":"uint256","name":"_campaignId","type":"uint256"}],
   "outputs":[
    {"internalType":"address","name":"owner","type":"address"},
    {"internalType":"string","name":"title","type":"string"},
    {"internalType":"string","name":"description","type":"string"},
    {"internalType":"uint256","name":"budget","type":"uint256"},
    {"internalType":"uint256","name":"reward","type":"uint256"},
    {"internalType":"uint256","name":"startTime","type":"uint256"},
    {"internalType":"uint256","name":"endTime","type":"uint256"},
    {"internalType":"bool","name":"isActive","type":"bool"},
    {"internalType":"uint256","name":"participantCount","type":"uint256"}]}
]`

// ContractABI parses the campaign contract ABI.
func ContractABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(campaignABI))
}
