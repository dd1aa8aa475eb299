package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RPCCalls counts JSON-RPC calls by method and status
	RPCCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evm_transfers_rpc_calls_total",
			Help: "Total number of JSON-RPC calls made to the Ethereum node",
		},
		[]string{"method", "status"},
	)

	// RPCDuration tracks JSON-RPC call latency
	RPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "evm_transfers_rpc_duration_seconds",
			Help:    "JSON-RPC call duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// TransactionsSent counts transactions submitted by kind and status
	TransactionsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evm_transfers_transactions_sent_total",
			Help: "Total number of transactions sent",
		},
		[]string{"kind", "status"},
	)

	// GasEstimated tracks raw gas estimates returned by the node
	GasEstimated = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "evm_transfers_gas_estimated",
			Help:    "Gas estimated for outgoing transactions",
			Buckets: []float64{21000, 50000, 100000, 200000, 500000, 1000000, 3000000, 7000000},
		},
		[]string{"kind"},
	)

	// GasUsed tracks gas used by mined transactions
	GasUsed = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "evm_transfers_gas_used",
			Help:    "Gas used by mined transactions",
			Buckets: []float64{21000, 50000, 100000, 200000, 500000, 1000000, 3000000, 7000000},
		},
		[]string{"kind"},
	)

	// BlocksScanned counts blocks visited by history scans
	BlocksScanned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evm_transfers_blocks_scanned_total",
			Help: "Total number of blocks scanned for transfers",
		},
		[]string{"asset"},
	)

	// TransfersFound counts transfers returned by history scans
	TransfersFound = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evm_transfers_history_transfers_total",
			Help: "Total number of transfers found by history scans",
		},
		[]string{"asset"},
	)

	// ErrorsTotal counts errors by component and category
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evm_transfers_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
